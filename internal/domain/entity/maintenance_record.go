package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType tipo de intervención de mantenimiento.
type MaintenanceType string

// Tipos de mantenimiento válidos.
const (
	MaintenanceRoutine     MaintenanceType = "ROUTINE"
	MaintenanceRepair      MaintenanceType = "REPAIR"
	MaintenanceCalibration MaintenanceType = "CALIBRATION"
	MaintenanceInspection  MaintenanceType = "INSPECTION"
	MaintenanceEmergency   MaintenanceType = "EMERGENCY"
)

// ValidMaintenanceType verifica que el tipo sea uno de los enumerados.
func ValidMaintenanceType(t MaintenanceType) bool {
	switch t {
	case MaintenanceRoutine, MaintenanceRepair, MaintenanceCalibration,
		MaintenanceInspection, MaintenanceEmergency:
		return true
	}
	return false
}

// MaintenanceStatus estado de un registro de mantenimiento.
// A diferencia de las órdenes de compra, aquí no hay máquina de estados:
// el usuario fija el estado libremente.
type MaintenanceStatus string

// Estados válidos para MaintenanceRecord.
const (
	MaintenanceScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

// ValidMaintenanceStatus verifica que el estado sea uno de los enumerados.
func ValidMaintenanceStatus(s MaintenanceStatus) bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

// MaintenanceRecord representa una intervención de mantenimiento sobre un equipo.
// Invariante: NextScheduledDate, si está presente, debe ser >= MaintenanceDate.
type MaintenanceRecord struct {
	ID                int64
	EquipmentID       int64 // referencia requerida
	EquipmentName     string
	TechnicianID      *int64 // usuario técnico (referencia débil)
	PerformedBy       string
	MaintenanceDate   time.Time // requerido, solo fecha
	Type              MaintenanceType
	Description       string
	Cost              decimal.Decimal   // >= 0
	NextScheduledDate *time.Time        // opcional
	Status            MaintenanceStatus // default COMPLETED
	CreatedAt         time.Time
}
