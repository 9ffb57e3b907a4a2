package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine representa un medicamento del inventario hospitalario.
// Quantity siempre es un entero >= 0; ExpiryDate es una fecha calendario
// (la hora del día no participa en las comparaciones de vencimiento).
type Medicine struct {
	ID          int64
	Name        string // requerido
	Description string
	Category    string // requerido
	Quantity    int    // >= 0
	UnitPrice   decimal.Decimal
	ExpiryDate  time.Time // requerido, solo fecha
	BatchNumber string
	SupplierID  *int64 // referencia débil, opcional
	// SupplierName se resuelve con JOIN en lecturas; no se persiste aquí.
	SupplierName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
