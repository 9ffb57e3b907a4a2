package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/order"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newOrderFixture(t *testing.T) (*usecase.OrderUseCase, *fakeOrderRepo, int64) {
	t.Helper()
	suppliers := newFakeSupplierRepo()
	supplierUC := usecase.NewSupplierUseCase(suppliers)
	sup, err := supplierUC.Create(dto.CreateSupplierRequest{Name: "MediPharma Ltd"})
	require.NoError(t, err, "debe poder crearse el proveedor base")

	orders := newFakeOrderRepo()
	return usecase.NewOrderUseCase(orders, suppliers, nil), orders, sup.ID
}

func createOrder(t *testing.T, uc *usecase.OrderUseCase, supplierID int64) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(1, dto.CreateOrderRequest{
		SupplierID: supplierID,
		ItemType:   "MEDICINE",
		ItemName:   "Paracetamol 500mg",
		Quantity:   10,
		UnitPrice:  decimal.RequireFromString("5.50"),
		OrderDate:  "2026-06-01",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El número de orden lo asigna el sistema: formato PO-XXXXXXXX en mayúsculas.
func TestOrderCreate_AsignaNumeroDeOrden(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	out := createOrder(t, uc, supplierID)

	assert.True(t, strings.HasPrefix(out.OrderNumber, "PO-"),
		"el número debe llevar el prefijo PO-")
	assert.Len(t, out.OrderNumber, 11, "PO- más 8 caracteres")
	assert.Equal(t, strings.ToUpper(out.OrderNumber), out.OrderNumber,
		"el número debe ir en mayúsculas")
	assert.Equal(t, "PENDING", out.Status, "toda orden nace PENDING")
}

// El total siempre se deriva de cantidad × precio; nunca se confía en el caller.
func TestOrderCreate_TotalDerivado(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	out := createOrder(t, uc, supplierID)

	assert.True(t, decimal.RequireFromString("55.00").Equal(out.TotalAmount),
		"10 × 5.50 debe dar 55.00, se obtuvo %s", out.TotalAmount)
}

// Proveedor inexistente → NotFound antes de persistir nada.
func TestOrderCreate_ProveedorInexistente(t *testing.T) {
	uc, orders, _ := newOrderFixture(t)
	_, err := uc.Create(1, dto.CreateOrderRequest{
		SupplierID: 999,
		ItemType:   "MEDICINE",
		ItemName:   "X",
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(1),
		OrderDate:  "2026-06-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, orders.items, "no debe haberse persistido ninguna orden")
}

// deliveryDate anterior a orderDate → error de validación con campo nombrado.
func TestOrderCreate_EntregaAntesDeOrden(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	_, err := uc.Create(1, dto.CreateOrderRequest{
		SupplierID:   supplierID,
		ItemType:     "MEDICINE",
		ItemName:     "X",
		Quantity:     1,
		UnitPrice:    decimal.NewFromInt(1),
		OrderDate:    "2026-06-10",
		DeliveryDate: "2026-06-09",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "deliveryDate", vErr.Field)
}

// Fecha malformada → error de validación, nunca pánico ni fecha cero.
func TestOrderCreate_FechaMalformada(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	_, err := uc.Create(1, dto.CreateOrderRequest{
		SupplierID: supplierID,
		ItemType:   "MEDICINE",
		ItemName:   "X",
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(1),
		OrderDate:  "01/06/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// El número de orden es inmutable y el total se recalcula en cada update.
func TestOrderUpdate_NumeroEstableYTotalRecalculado(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	created := createOrder(t, uc, supplierID)

	qty := 3
	price := decimal.RequireFromString("2.00")
	updated, err := uc.Update(created.ID, dto.UpdateOrderRequest{
		Quantity:  &qty,
		UnitPrice: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, created.OrderNumber, updated.OrderNumber,
		"el número de orden no debe cambiar en updates")
	assert.True(t, decimal.RequireFromString("6.00").Equal(updated.TotalAmount),
		"el total debe recalcularse: 3 × 2.00 = 6.00")
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz completo PENDING → APPROVED → ORDERED → DELIVERED.
func TestOrderUpdateStatus_CaminoFeliz(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	created := createOrder(t, uc, supplierID)

	for _, status := range []string{"APPROVED", "ORDERED", "DELIVERED"} {
		out, err := uc.UpdateStatus(created.ID, dto.UpdateOrderStatusRequest{Status: status})
		require.NoError(t, err, "transición a %s debe ser válida", status)
		assert.Equal(t, status, out.Status)
	}
}

// Saltarse un paso (PENDING → ORDERED) se rechaza con el error tipado.
func TestOrderUpdateStatus_SaltoIlegal(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	created := createOrder(t, uc, supplierID)

	_, err := uc.UpdateStatus(created.ID, dto.UpdateOrderStatusRequest{Status: "ORDERED"})
	var tErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "PENDING", string(tErr.From))
	assert.Equal(t, "ORDERED", string(tErr.To))
}

// Estado terminal: DELIVERED no puede cancelarse.
func TestOrderUpdateStatus_DeliveredNoSeCancela(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	created := createOrder(t, uc, supplierID)

	for _, status := range []string{"APPROVED", "ORDERED", "DELIVERED"} {
		_, err := uc.UpdateStatus(created.ID, dto.UpdateOrderStatusRequest{Status: status})
		require.NoError(t, err)
	}
	_, err := uc.UpdateStatus(created.ID, dto.UpdateOrderStatusRequest{Status: "CANCELLED"})
	var tErr *order.InvalidTransitionError
	assert.ErrorAs(t, err, &tErr, "DELIVERED es terminal")
}

// Transición al mismo estado: no-op idempotente, sin escritura al store.
func TestOrderUpdateStatus_MismoEstadoNoEscribe(t *testing.T) {
	uc, orders, supplierID := newOrderFixture(t)
	created := createOrder(t, uc, supplierID)

	before := orders.updates
	out, err := uc.UpdateStatus(created.ID, dto.UpdateOrderStatusRequest{Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", out.Status)
	assert.Equal(t, before, orders.updates,
		"un no-op no debe llegar al store")
}

// Cancelación válida desde cualquier estado no terminal.
func TestOrderUpdateStatus_CancelDesdePending(t *testing.T) {
	uc, _, supplierID := newOrderFixture(t)
	created := createOrder(t, uc, supplierID)

	out, err := uc.UpdateStatus(created.ID, dto.UpdateOrderStatusRequest{Status: "CANCELLED"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", out.Status)
}
