package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
)

func newMedicineFixture(t *testing.T) (*usecase.MedicineUseCase, *fakeMedicineRepo) {
	t.Helper()
	repo := newFakeMedicineRepo()
	uc := usecase.NewMedicineUseCase(repo, alerting.DefaultConfig())
	return uc, repo
}

// dateString formatea una fecha relativa a hoy como "YYYY-MM-DD".
func dateString(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func createMedicine(t *testing.T, uc *usecase.MedicineUseCase, name string, qty int, expiryDays int) *dto.MedicineResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateMedicineRequest{
		Name:       name,
		Category:   "Analgésico",
		Quantity:   qty,
		UnitPrice:  decimal.NewFromFloat(1.50),
		ExpiryDate: dateString(expiryDays),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────

func TestMedicineCreate_CamposRequeridos(t *testing.T) {
	uc, _ := newMedicineFixture(t)

	cases := []struct {
		name  string
		in    dto.CreateMedicineRequest
		field string
	}{
		{"sin nombre", dto.CreateMedicineRequest{Category: "Analgésico", ExpiryDate: dateString(30)}, "name"},
		{"sin categoría", dto.CreateMedicineRequest{Name: "Paracetamol", ExpiryDate: dateString(30)}, "category"},
		{"cantidad negativa", dto.CreateMedicineRequest{Name: "Paracetamol", Category: "Analgésico", Quantity: -1, ExpiryDate: dateString(30)}, "quantity"},
		{"precio negativo", dto.CreateMedicineRequest{Name: "Paracetamol", Category: "Analgésico", UnitPrice: decimal.NewFromInt(-1), ExpiryDate: dateString(30)}, "unitPrice"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestMedicineCreate_FechaMalFormada(t *testing.T) {
	uc, _ := newMedicineFixture(t)

	_, err := uc.Create(dto.CreateMedicineRequest{
		Name:       "Paracetamol",
		Category:   "Analgésico",
		ExpiryDate: "01/06/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────
// Estados derivados
// ──────────────────────────────────────────────────────────────────────────

// Los flags expired/expiringSoon/lowStock se derivan en cada lectura, nunca
// se persisten. Vencido y por-vencer son mutuamente excluyentes.
func TestMedicine_EstadosDerivados(t *testing.T) {
	uc, _ := newMedicineFixture(t)

	fresh := createMedicine(t, uc, "Amoxicilina", 200, 120)
	assert.False(t, fresh.Expired)
	assert.False(t, fresh.ExpiringSoon)
	assert.False(t, fresh.LowStock)

	soon := createMedicine(t, uc, "Insulina", 45, 20)
	assert.False(t, soon.Expired)
	assert.True(t, soon.ExpiringSoon, "a 20 días con ventana de 30 debe estar por vencer")
	assert.True(t, soon.LowStock, "45 unidades con umbral 50 es stock bajo")

	expired := createMedicine(t, uc, "Aspirina", 200, -5)
	assert.True(t, expired.Expired)
	assert.False(t, expired.ExpiringSoon, "un vencido nunca es por-vencer")
}

// El día exacto del vencimiento todavía no cuenta como vencido.
func TestMedicine_VenceHoyNoEsVencido(t *testing.T) {
	uc, _ := newMedicineFixture(t)

	out := createMedicine(t, uc, "Ibuprofeno", 200, 0)
	assert.False(t, out.Expired)
	assert.True(t, out.ExpiringSoon)
}

// ──────────────────────────────────────────────────────────────────────────
// Listados derivados
// ──────────────────────────────────────────────────────────────────────────

func TestMedicineLowStock_FiltraPorUmbral(t *testing.T) {
	uc, _ := newMedicineFixture(t)
	createMedicine(t, uc, "Amoxicilina", 200, 120)
	low := createMedicine(t, uc, "Insulina", 45, 60)

	items, err := uc.LowStock(0) // 0 → umbral configurado (50)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, low.ID, items[0].ID)

	// Umbral explícito más alto atrapa a ambos.
	items, err = uc.LowStock(300)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestMedicineLowStock_UmbralEsEstricto(t *testing.T) {
	uc, _ := newMedicineFixture(t)
	createMedicine(t, uc, "Insulina", 50, 60)

	items, err := uc.LowStock(50)
	require.NoError(t, err)
	assert.Empty(t, items, "cantidad == umbral no es stock bajo")
}

func TestMedicineExpiring_ExcluyeVencidos(t *testing.T) {
	uc, _ := newMedicineFixture(t)
	createMedicine(t, uc, "Aspirina", 200, -5)
	soon := createMedicine(t, uc, "Insulina", 200, 20)
	createMedicine(t, uc, "Amoxicilina", 200, 120)

	items, err := uc.Expiring(0) // 0 → ventana configurada (30 días)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, soon.ID, items[0].ID)

	// Con ventana amplia entran los futuros, los vencidos siguen fuera.
	items, err = uc.Expiring(365)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

// ──────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────

func TestMedicineUpdate_Parcial(t *testing.T) {
	uc, _ := newMedicineFixture(t)
	created := createMedicine(t, uc, "Paracetamol", 200, 120)

	qty := 30
	out, err := uc.Update(created.ID, dto.UpdateMedicineRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 30, out.Quantity)
	assert.Equal(t, "Paracetamol", out.Name, "los campos ausentes se conservan")
	assert.True(t, out.LowStock, "el flag se recomputa con la nueva cantidad")
}

func TestMedicineGetByID_NoExiste(t *testing.T) {
	uc, _ := newMedicineFixture(t)

	_, err := uc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMedicineDelete_EliminaFisicamente(t *testing.T) {
	uc, repo := newMedicineFixture(t)
	created := createMedicine(t, uc, "Paracetamol", 200, 120)

	require.NoError(t, uc.Delete(created.ID))

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
