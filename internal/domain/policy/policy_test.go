package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/policy"
)

func TestCanPerform_AdminPuedeTodo(t *testing.T) {
	acciones := []policy.Action{
		policy.SuppliersDelete, policy.MedicinesWrite, policy.EquipmentDelete,
		policy.OrdersWrite, policy.MaintenanceDelete, policy.UsersManage,
		policy.DashboardView,
	}
	for _, a := range acciones {
		assert.True(t, policy.CanPerform(entity.RoleAdmin, a), "ADMIN debe poder %s", a)
	}
}

func TestCanPerform_FarmaceuticoMedicinasYOrdenes(t *testing.T) {
	assert.True(t, policy.CanPerform(entity.RolePharmacist, policy.MedicinesWrite))
	assert.True(t, policy.CanPerform(entity.RolePharmacist, policy.OrdersRead))
	assert.True(t, policy.CanPerform(entity.RolePharmacist, policy.SuppliersWrite))

	assert.False(t, policy.CanPerform(entity.RolePharmacist, policy.MedicinesDelete),
		"delete es solo ADMIN")
	assert.False(t, policy.CanPerform(entity.RolePharmacist, policy.EquipmentWrite),
		"equipos son del técnico")
	assert.False(t, policy.CanPerform(entity.RolePharmacist, policy.UsersManage))
}

func TestCanPerform_TecnicoEquiposYMantenimiento(t *testing.T) {
	assert.True(t, policy.CanPerform(entity.RoleTechnician, policy.EquipmentWrite))
	assert.True(t, policy.CanPerform(entity.RoleTechnician, policy.MaintenanceRead))

	assert.False(t, policy.CanPerform(entity.RoleTechnician, policy.MedicinesRead))
	assert.False(t, policy.CanPerform(entity.RoleTechnician, policy.OrdersWrite))
	assert.False(t, policy.CanPerform(entity.RoleTechnician, policy.EquipmentDelete))
}

func TestCanPerform_RolDesconocidoNoPuedeNada(t *testing.T) {
	assert.False(t, policy.CanPerform("GUEST", policy.DashboardView))
	assert.False(t, policy.CanPerform("", policy.MedicinesRead))
}

func TestRolesFor_IncluyeSiempreAdmin(t *testing.T) {
	roles := policy.RolesFor(policy.MaintenanceWrite)
	assert.Contains(t, roles, entity.RoleAdmin)
	assert.Contains(t, roles, entity.RoleTechnician)
	assert.NotContains(t, roles, entity.RolePharmacist)
}
