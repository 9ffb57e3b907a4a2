package alerts_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/hemis-api/internal/application/alerts"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/infrastructure/metrics"
)

// ──────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura: el chequeador únicamente lista.
// ──────────────────────────────────────────────────────────────────────────

type fixedMedicineRepo struct{ items []*entity.Medicine }

func (r *fixedMedicineRepo) Create(*entity.Medicine) error           { return nil }
func (r *fixedMedicineRepo) GetByID(int64) (*entity.Medicine, error) { return nil, nil }
func (r *fixedMedicineRepo) Update(*entity.Medicine) error           { return nil }
func (r *fixedMedicineRepo) List() ([]*entity.Medicine, error)       { return r.items, nil }
func (r *fixedMedicineRepo) Delete(int64) error                      { return nil }

type fixedEquipmentRepo struct{ items []*entity.Equipment }

func (r *fixedEquipmentRepo) Create(*entity.Equipment) error           { return nil }
func (r *fixedEquipmentRepo) GetByID(int64) (*entity.Equipment, error) { return nil, nil }
func (r *fixedEquipmentRepo) Update(*entity.Equipment) error           { return nil }
func (r *fixedEquipmentRepo) List() ([]*entity.Equipment, error)       { return r.items, nil }
func (r *fixedEquipmentRepo) Delete(int64) error                       { return nil }

func daysFrom(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, days)
}

func daysFromPtr(now time.Time, days int) *time.Time {
	d := daysFrom(now, days)
	return &d
}

// inventario sintético con un caso de cada condición.
func newCheckerFixture(m *metrics.Metrics) (*alerts.Checker, time.Time) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	medRepo := &fixedMedicineRepo{items: []*entity.Medicine{
		{ID: 1, Name: "Aspirina", Quantity: 200, ExpiryDate: daysFrom(now, -5)},     // vencida
		{ID: 2, Name: "Insulina", Quantity: 200, ExpiryDate: daysFrom(now, 10)},     // por vencer
		{ID: 3, Name: "Paracetamol", Quantity: 10, ExpiryDate: daysFrom(now, 365)},  // stock bajo
		{ID: 4, Name: "Amoxicilina", Quantity: 200, ExpiryDate: daysFrom(now, 365)}, // sana
	}}
	eqRepo := &fixedEquipmentRepo{items: []*entity.Equipment{
		{ID: 1, Name: "Rayos X", NextMaintenanceDate: daysFromPtr(now, 10)},   // próximo
		{ID: 2, Name: "Ecógrafo", NextMaintenanceDate: daysFromPtr(now, -15)}, // vencido
		{ID: 3, Name: "Monitor", NextMaintenanceDate: daysFromPtr(now, 180)},  // lejano
		{ID: 4, Name: "Desfibrilador", NextMaintenanceDate: nil},              // sin fecha
	}}
	return alerts.NewChecker(alerting.DefaultConfig(), medRepo, eqRepo, m, zerolog.Nop()), now
}

// Un chequeo sobre el inventario sintético deja los gauges con los conteos
// exactos de cada condición.
func TestChecker_ActualizaGauges(t *testing.T) {
	m := metrics.New()
	checker, now := newCheckerFixture(m)

	checker.Check(now)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpiredMedicines),
		"solo la aspirina está vencida")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpiringSoonMedicines),
		"solo la insulina está por vencer; una vencida nunca cuenta aquí")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LowStockMedicines),
		"solo el paracetamol está bajo el umbral")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MaintenanceDue),
		"cuentan el próximo y el vencido; el lejano y el sin-fecha no")
}

// Cada chequeo reemplaza los valores anteriores: los gauges reflejan el
// último estado, no un acumulado.
func TestChecker_ChequeoRepetidoNoAcumula(t *testing.T) {
	m := metrics.New()
	checker, now := newCheckerFixture(m)

	checker.Check(now)
	checker.Check(now)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpiredMedicines))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MaintenanceDue))
}

// Sin métricas configuradas el chequeo solo registra en el log.
func TestChecker_SinMetricasNoFalla(t *testing.T) {
	checker, now := newCheckerFixture(nil)

	assert.NotPanics(t, func() { checker.Check(now) })
}
