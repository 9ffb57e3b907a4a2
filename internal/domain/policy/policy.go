// Package policy centraliza la autorización por rol como una función
// explícita CanPerform(role, action), evaluada en el borde HTTP en lugar de
// dispersar los chequeos por los handlers.
package policy

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// Action identifica una operación autorizable.
type Action string

// Acciones del sistema. La convención es recurso.verbo; "write" cubre
// create y update, "delete" es siempre acción aparte (solo ADMIN).
const (
	SuppliersRead     Action = "suppliers.read"
	SuppliersWrite    Action = "suppliers.write"
	SuppliersDelete   Action = "suppliers.delete"
	MedicinesRead     Action = "medicines.read"
	MedicinesWrite    Action = "medicines.write"
	MedicinesDelete   Action = "medicines.delete"
	EquipmentRead     Action = "equipment.read"
	EquipmentWrite    Action = "equipment.write"
	EquipmentDelete   Action = "equipment.delete"
	OrdersRead        Action = "orders.read"
	OrdersWrite       Action = "orders.write"
	OrdersDelete      Action = "orders.delete"
	MaintenanceRead   Action = "maintenance.read"
	MaintenanceWrite  Action = "maintenance.write"
	MaintenanceDelete Action = "maintenance.delete"
	UsersManage       Action = "users.manage"
	DashboardView     Action = "dashboard.view"
)

// grants roles permitidos por acción. ADMIN está implícito en todas.
var grants = map[Action][]string{
	SuppliersRead:    {entity.RolePharmacist},
	SuppliersWrite:   {entity.RolePharmacist},
	MedicinesRead:    {entity.RolePharmacist},
	MedicinesWrite:   {entity.RolePharmacist},
	EquipmentRead:    {entity.RoleTechnician},
	EquipmentWrite:   {entity.RoleTechnician},
	OrdersRead:       {entity.RolePharmacist},
	OrdersWrite:      {entity.RolePharmacist},
	MaintenanceRead:  {entity.RoleTechnician},
	MaintenanceWrite: {entity.RoleTechnician},
	DashboardView:    {entity.RolePharmacist, entity.RoleTechnician},
	// SuppliersDelete, MedicinesDelete, EquipmentDelete, OrdersDelete,
	// MaintenanceDelete y UsersManage: solo ADMIN.
}

// CanPerform reporta si el rol puede ejecutar la acción. ADMIN puede todo;
// un rol desconocido no puede nada.
func CanPerform(role string, action Action) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, allowed := range grants[action] {
		if role == allowed {
			return true
		}
	}
	return false
}

// RolesFor devuelve los roles que pueden ejecutar la acción (útil para el
// middleware RequireRole del borde HTTP).
func RolesFor(action Action) []string {
	return append([]string{entity.RoleAdmin}, grants[action]...)
}
