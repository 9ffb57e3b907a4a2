package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEquipmentRequest datos para crear un equipo.
type CreateEquipmentRequest struct {
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	SerialNumber        string          `json:"serialNumber"`
	Model               string          `json:"model"`
	SupplierID          *int64          `json:"supplierId"`
	PurchaseDate        string          `json:"purchaseDate"`
	PurchasePrice       decimal.Decimal `json:"purchasePrice"`
	Status              string          `json:"status"` // vacío => OPERATIONAL
	NextMaintenanceDate string          `json:"nextMaintenanceDate"`
	Location            string          `json:"location"`
}

// UpdateEquipmentRequest actualización parcial.
type UpdateEquipmentRequest struct {
	Name                *string          `json:"name"`
	Description         *string          `json:"description"`
	Category            *string          `json:"category"`
	SerialNumber        *string          `json:"serialNumber"`
	Model               *string          `json:"model"`
	SupplierID          *int64           `json:"supplierId"`
	PurchaseDate        *string          `json:"purchaseDate"`
	PurchasePrice       *decimal.Decimal `json:"purchasePrice"`
	Status              *string          `json:"status"`
	NextMaintenanceDate *string          `json:"nextMaintenanceDate"`
	Location            *string          `json:"location"`
}

// EquipmentResponse representación pública con el estado derivado de
// mantenimiento pendiente.
type EquipmentResponse struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	SerialNumber        string          `json:"serialNumber"`
	Model               string          `json:"model"`
	SupplierID          *int64          `json:"supplierId"`
	SupplierName        string          `json:"supplierName,omitempty"`
	PurchaseDate        string          `json:"purchaseDate,omitempty"`
	PurchasePrice       decimal.Decimal `json:"purchasePrice"`
	Status              string          `json:"status"`
	NextMaintenanceDate string          `json:"nextMaintenanceDate,omitempty"`
	Location            string          `json:"location"`
	MaintenanceDue      bool            `json:"maintenanceDue"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
