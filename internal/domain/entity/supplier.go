package entity

import "time"

// Supplier representa un proveedor de medicamentos, equipos o suministros.
// Referenciado de forma débil por Medicine, Equipment y PurchaseOrder:
// eliminar un proveedor nunca elimina en cascada los registros que lo apuntan.
type Supplier struct {
	ID            int64
	Name          string // requerido, no vacío
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Active        bool // default true
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
