package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden de compra.
type OrderStatus string

// Estados del ciclo de vida: PENDING → APPROVED → ORDERED → DELIVERED,
// con CANCELLED alcanzable desde cualquier estado no terminal.
const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderOrdered   OrderStatus = "ORDERED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ItemType tipo de ítem que se ordena.
type ItemType string

// Tipos de ítem válidos para PurchaseOrder.
const (
	ItemMedicine  ItemType = "MEDICINE"
	ItemEquipment ItemType = "EQUIPMENT"
	ItemSupplies  ItemType = "SUPPLIES"
)

// ValidItemType verifica que el tipo de ítem sea uno de los enumerados.
func ValidItemType(t ItemType) bool {
	switch t {
	case ItemMedicine, ItemEquipment, ItemSupplies:
		return true
	}
	return false
}

// PurchaseOrder representa una orden de compra a un proveedor.
// OrderNumber lo asigna el sistema una sola vez al crear y es inmutable.
// TotalAmount siempre es recomputable como Quantity × UnitPrice (operandos
// ausentes cuentan como 0); nunca se confía en el valor enviado por el caller.
type PurchaseOrder struct {
	ID           int64
	OrderNumber  string // único, legible, ej. PO-3F2A9C1D
	SupplierID   int64  // referencia requerida
	SupplierName string
	OrderedByID  *int64 // usuario que registró la orden (referencia débil)
	ItemType     ItemType
	ItemName     string
	Quantity     int             // >= 0
	UnitPrice    decimal.Decimal // >= 0
	TotalAmount  decimal.Decimal // derivado = Quantity × UnitPrice
	OrderDate    time.Time       // requerido, solo fecha
	DeliveryDate *time.Time      // opcional, debe ser >= OrderDate
	Status       OrderStatus     // default PENDING
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
