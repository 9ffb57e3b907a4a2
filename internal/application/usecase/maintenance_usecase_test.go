package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
)

// newMaintenanceFixture arma el caso de uso con un equipo ya registrado y
// devuelve su ID.
func newMaintenanceFixture(t *testing.T) (*usecase.MaintenanceUseCase, int64) {
	t.Helper()
	equipmentRepo := newFakeEquipmentRepo()
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, alerting.DefaultConfig())
	equipment, err := equipmentUC.Create(dto.CreateEquipmentRequest{
		Name:          "Máquina de Rayos X",
		Category:      "Imagenología",
		SerialNumber:  "XR-2024-001",
		PurchaseDate:  dateString(-400),
		PurchasePrice: decimal.NewFromInt(85000),
	})
	require.NoError(t, err)
	uc := usecase.NewMaintenanceUseCase(newFakeMaintenanceRepo(), equipmentRepo)
	return uc, equipment.ID
}

// Status vacío aplica el default COMPLETED y el nombre del equipo se
// desnormaliza en la respuesta.
func TestMaintenanceCreate_DefaultCompleted(t *testing.T) {
	uc, equipmentID := newMaintenanceFixture(t)

	out, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:     equipmentID,
		PerformedBy:     "Carlos Técnico",
		MaintenanceDate: dateString(0),
		Type:            "ROUTINE",
		Cost:            decimal.NewFromFloat(150.00),
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", out.Status)
	assert.Equal(t, "Máquina de Rayos X", out.EquipmentName)
}

// Registrar mantenimiento contra un equipo inexistente → ErrNotFound.
func TestMaintenanceCreate_EquipoNoExiste(t *testing.T) {
	uc, _ := newMaintenanceFixture(t)

	_, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:     999,
		MaintenanceDate: dateString(0),
		Type:            "ROUTINE",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMaintenanceCreate_TipoDesconocido(t *testing.T) {
	uc, equipmentID := newMaintenanceFixture(t)

	_, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:     equipmentID,
		MaintenanceDate: dateString(0),
		Type:            "OVERHAUL",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)
}

// NextScheduledDate anterior a MaintenanceDate viola el invariante.
func TestMaintenanceCreate_ProximaFechaAnterior(t *testing.T) {
	uc, equipmentID := newMaintenanceFixture(t)

	_, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:       equipmentID,
		MaintenanceDate:   dateString(0),
		Type:              "ROUTINE",
		NextScheduledDate: dateString(-10),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nextScheduledDate", vErr.Field)
}

// NextScheduledDate == MaintenanceDate es válido (el invariante es >=).
func TestMaintenanceCreate_ProximaFechaMismoDia(t *testing.T) {
	uc, equipmentID := newMaintenanceFixture(t)

	out, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:       equipmentID,
		MaintenanceDate:   dateString(0),
		Type:              "CALIBRATION",
		NextScheduledDate: dateString(0),
	})
	require.NoError(t, err)
	assert.Equal(t, dateString(0), out.NextScheduledDate)
}

// Con NextScheduledDate presente la respuesta propone esa fecha como próximo
// mantenimiento del equipo. Es una sugerencia: el registro nunca actualiza
// Equipment por sí solo.
func TestMaintenance_SugerenciaSinCascada(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, alerting.DefaultConfig())
	equipment, err := equipmentUC.Create(dto.CreateEquipmentRequest{
		Name:          "Ecógrafo",
		Category:      "Imagenología",
		SerialNumber:  "US-2024-002",
		PurchaseDate:  dateString(-200),
		PurchasePrice: decimal.NewFromInt(42000),
	})
	require.NoError(t, err)
	uc := usecase.NewMaintenanceUseCase(newFakeMaintenanceRepo(), equipmentRepo)

	out, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:       equipment.ID,
		MaintenanceDate:   dateString(0),
		Type:              "ROUTINE",
		NextScheduledDate: dateString(90),
	})
	require.NoError(t, err)
	assert.Equal(t, dateString(90), out.SuggestedEquipmentDate)

	refreshed, err := equipmentUC.GetByID(equipment.ID)
	require.NoError(t, err)
	assert.Empty(t, refreshed.NextMaintenanceDate,
		"el equipo no debe actualizarse en cascada")
}

// El invariante también se valida en Update, combinando lo almacenado con lo
// que llega en la actualización parcial.
func TestMaintenanceUpdate_InvarianteDeFechas(t *testing.T) {
	uc, equipmentID := newMaintenanceFixture(t)
	created, err := uc.Create(dto.CreateMaintenanceRequest{
		EquipmentID:       equipmentID,
		MaintenanceDate:   dateString(0),
		Type:              "ROUTINE",
		NextScheduledDate: dateString(30),
	})
	require.NoError(t, err)

	// Mover MaintenanceDate después de la próxima programada rompe el orden.
	late := dateString(60)
	_, err = uc.Update(created.ID, dto.UpdateMaintenanceRequest{MaintenanceDate: &late})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nextScheduledDate", vErr.Field)

	// El estado se fija libremente: no hay máquina de estados aquí.
	status := "SCHEDULED"
	out, err := uc.Update(created.ID, dto.UpdateMaintenanceRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", out.Status)
}

func TestMaintenanceListByEquipment(t *testing.T) {
	uc, equipmentID := newMaintenanceFixture(t)
	for _, mType := range []string{"ROUTINE", "REPAIR"} {
		_, err := uc.Create(dto.CreateMaintenanceRequest{
			EquipmentID:     equipmentID,
			MaintenanceDate: dateString(0),
			Type:            mType,
		})
		require.NoError(t, err)
	}

	items, err := uc.ListByEquipment(equipmentID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = uc.ListByEquipment(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
