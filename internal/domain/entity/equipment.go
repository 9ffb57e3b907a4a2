package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentStatus estado operativo de un equipo.
type EquipmentStatus string

// Estados válidos para Equipment. El estado operativo y la programación de
// mantenimiento son ejes independientes: un equipo OPERATIONAL puede tener
// mantenimiento vencido.
const (
	EquipmentOperational EquipmentStatus = "OPERATIONAL"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentOutOfOrder  EquipmentStatus = "OUT_OF_ORDER"
	EquipmentRetired     EquipmentStatus = "RETIRED"
)

// ValidEquipmentStatus verifica que el estado sea uno de los cuatro valores enumerados.
func ValidEquipmentStatus(s EquipmentStatus) bool {
	switch s {
	case EquipmentOperational, EquipmentMaintenance, EquipmentOutOfOrder, EquipmentRetired:
		return true
	}
	return false
}

// Equipment representa un equipo médico del hospital.
type Equipment struct {
	ID                  int64
	Name                string
	Description         string
	Category            string // requerido
	SerialNumber        string
	Model               string
	SupplierID          *int64 // referencia débil, opcional
	SupplierName        string
	PurchaseDate        *time.Time
	PurchasePrice       decimal.Decimal // >= 0
	Status              EquipmentStatus // requerido, default OPERATIONAL
	NextMaintenanceDate *time.Time      // opcional, solo fecha
	Location            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
