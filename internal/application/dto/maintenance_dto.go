package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest datos para registrar un mantenimiento.
type CreateMaintenanceRequest struct {
	EquipmentID       int64           `json:"equipmentId"`
	TechnicianID      *int64          `json:"technicianId"`
	PerformedBy       string          `json:"performedBy"`
	MaintenanceDate   string          `json:"maintenanceDate"`
	Type              string          `json:"type"`
	Description       string          `json:"description"`
	Cost              decimal.Decimal `json:"cost"`
	NextScheduledDate string          `json:"nextScheduledDate"`
	Status            string          `json:"status"` // vacío => COMPLETED
}

// UpdateMaintenanceRequest actualización parcial.
type UpdateMaintenanceRequest struct {
	TechnicianID      *int64           `json:"technicianId"`
	PerformedBy       *string          `json:"performedBy"`
	MaintenanceDate   *string          `json:"maintenanceDate"`
	Type              *string          `json:"type"`
	Description       *string          `json:"description"`
	Cost              *decimal.Decimal `json:"cost"`
	NextScheduledDate *string          `json:"nextScheduledDate"`
	Status            *string          `json:"status"`
}

// MaintenanceResponse representación pública de un registro de mantenimiento.
//
// SuggestedEquipmentDate: cuando el registro trae NextScheduledDate, el
// sistema PROPONE esa fecha como próximo mantenimiento del equipo. Es una
// sugerencia para el caller (el shell de UI decide si aplicarla con un
// update de Equipment); nunca una cascada automática.
type MaintenanceResponse struct {
	ID                     int64           `json:"id"`
	EquipmentID            int64           `json:"equipmentId"`
	EquipmentName          string          `json:"equipmentName,omitempty"`
	TechnicianID           *int64          `json:"technicianId,omitempty"`
	PerformedBy            string          `json:"performedBy"`
	MaintenanceDate        string          `json:"maintenanceDate"`
	Type                   string          `json:"type"`
	Description            string          `json:"description"`
	Cost                   decimal.Decimal `json:"cost"`
	NextScheduledDate      string          `json:"nextScheduledDate,omitempty"`
	Status                 string          `json:"status"`
	SuggestedEquipmentDate string          `json:"suggestedEquipmentNextMaintenanceDate,omitempty"`
	CreatedAt              time.Time       `json:"createdAt"`
}
