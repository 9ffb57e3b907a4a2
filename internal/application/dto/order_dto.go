package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest datos para crear una orden de compra. TotalAmount no se
// acepta del caller: siempre se deriva de Quantity × UnitPrice.
type CreateOrderRequest struct {
	SupplierID   int64           `json:"supplierId"`
	ItemType     string          `json:"itemType"`
	ItemName     string          `json:"itemName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	OrderDate    string          `json:"orderDate"`
	DeliveryDate string          `json:"deliveryDate"`
	Notes        string          `json:"notes"`
}

// UpdateOrderRequest actualización parcial. OrderNumber y Status no se tocan
// por aquí: el número es inmutable y el estado cambia solo vía la transición
// explícita (UpdateOrderStatusRequest).
type UpdateOrderRequest struct {
	SupplierID   *int64           `json:"supplierId"`
	ItemType     *string          `json:"itemType"`
	ItemName     *string          `json:"itemName"`
	Quantity     *int             `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	OrderDate    *string          `json:"orderDate"`
	DeliveryDate *string          `json:"deliveryDate"`
	Notes        *string          `json:"notes"`
}

// UpdateOrderStatusRequest solicitud de transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación pública de una orden de compra.
type OrderResponse struct {
	ID           int64           `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	SupplierID   int64           `json:"supplierId"`
	SupplierName string          `json:"supplierName,omitempty"`
	OrderedByID  *int64          `json:"orderedById,omitempty"`
	ItemType     string          `json:"itemType"`
	ItemName     string          `json:"itemName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	OrderDate    string          `json:"orderDate"`
	DeliveryDate string          `json:"deliveryDate,omitempty"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
