package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RolePharmacist = "PHARMACIST"
	RoleTechnician = "TECHNICIAN"
)

// ValidRole verifica que el rol sea uno de los tres enumerados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RolePharmacist || role == RoleTechnician
}

// User representa un usuario del sistema.
// La eliminación de usuarios es lógica (Active=false) para preservar el
// historial referencial en órdenes y registros de mantenimiento.
type User struct {
	ID           int64
	Username     string // único, requerido
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Email        string
	Role         string // ADMIN, PHARMACIST, TECHNICIAN
	Active       bool   // default true; soft delete pone false
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
