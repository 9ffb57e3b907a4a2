package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMedicineRequest datos para crear un medicamento. Las fechas viajan
// como "YYYY-MM-DD"; el caso de uso las valida y parsea.
type CreateMedicineRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	ExpiryDate  string          `json:"expiryDate"`
	BatchNumber string          `json:"batchNumber"`
	SupplierID  *int64          `json:"supplierId"`
}

// UpdateMedicineRequest actualización parcial.
type UpdateMedicineRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Quantity    *int             `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	ExpiryDate  *string          `json:"expiryDate"`
	BatchNumber *string          `json:"batchNumber"`
	SupplierID  *int64           `json:"supplierId"`
}

// MedicineResponse representación pública con los estados derivados del
// evaluador (recomputados en cada respuesta, nunca persistidos).
type MedicineResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ExpiryDate   string          `json:"expiryDate"`
	BatchNumber  string          `json:"batchNumber"`
	SupplierID   *int64          `json:"supplierId"`
	SupplierName string          `json:"supplierName,omitempty"`
	Expired      bool            `json:"expired"`
	ExpiringSoon bool            `json:"expiringSoon"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
