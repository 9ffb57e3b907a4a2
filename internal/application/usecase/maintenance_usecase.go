package usecase

import (
	"time"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

// MaintenanceUseCase casos de uso para registros de mantenimiento. No hay
// máquina de estados: el estado lo fija el usuario libremente. Cuando el
// registro trae NextScheduledDate, la respuesta incluye esa fecha como
// sugerencia de próximo mantenimiento para el equipo — el caller decide si
// aplicarla con un update de Equipment, nunca hay cascada automática.
type MaintenanceUseCase struct {
	repo          repository.MaintenanceRepository
	equipmentRepo repository.EquipmentRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, equipmentRepo repository.EquipmentRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, equipmentRepo: equipmentRepo}
}

// Create registra un mantenimiento. Status vacío aplica el default COMPLETED.
func (uc *MaintenanceUseCase) Create(in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if in.EquipmentID <= 0 {
		return nil, domain.NewValidationError("equipmentId", "es requerido")
	}
	maintenanceDate, err := parseDate("maintenanceDate", in.MaintenanceDate)
	if err != nil {
		return nil, err
	}
	mType := entity.MaintenanceType(in.Type)
	if !entity.ValidMaintenanceType(mType) {
		return nil, domain.NewValidationError("type", "tipo de mantenimiento desconocido")
	}
	if in.Cost.IsNegative() {
		return nil, domain.NewValidationError("cost", "debe ser >= 0")
	}
	status := entity.MaintenanceStatus(in.Status)
	if in.Status == "" {
		status = entity.MaintenanceCompleted
	} else if !entity.ValidMaintenanceStatus(status) {
		return nil, domain.NewValidationError("status", "estado de mantenimiento desconocido")
	}
	nextScheduled, err := parseOptionalDate("nextScheduledDate", in.NextScheduledDate)
	if err != nil {
		return nil, err
	}
	if nextScheduled != nil && nextScheduled.Before(maintenanceDate) {
		return nil, domain.NewValidationError("nextScheduledDate", "debe ser igual o posterior a maintenanceDate")
	}

	equipment, err := uc.equipmentRepo.GetByID(in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}

	record := &entity.MaintenanceRecord{
		EquipmentID:       in.EquipmentID,
		EquipmentName:     equipment.Name,
		TechnicianID:      in.TechnicianID,
		PerformedBy:       in.PerformedBy,
		MaintenanceDate:   maintenanceDate,
		Type:              mType,
		Description:       in.Description,
		Cost:              in.Cost,
		NextScheduledDate: nextScheduled,
		Status:            status,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(record), nil
}

// GetByID obtiene un registro por ID.
func (uc *MaintenanceUseCase) GetByID(id int64) (*dto.MaintenanceResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(record), nil
}

// Update aplica una actualización parcial.
func (uc *MaintenanceUseCase) Update(id int64, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if in.TechnicianID != nil {
		record.TechnicianID = in.TechnicianID
	}
	if in.PerformedBy != nil {
		record.PerformedBy = *in.PerformedBy
	}
	if in.MaintenanceDate != nil {
		d, err := parseDate("maintenanceDate", *in.MaintenanceDate)
		if err != nil {
			return nil, err
		}
		record.MaintenanceDate = d
	}
	if in.Type != nil {
		mType := entity.MaintenanceType(*in.Type)
		if !entity.ValidMaintenanceType(mType) {
			return nil, domain.NewValidationError("type", "tipo de mantenimiento desconocido")
		}
		record.Type = mType
	}
	if in.Description != nil {
		record.Description = *in.Description
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.NewValidationError("cost", "debe ser >= 0")
		}
		record.Cost = *in.Cost
	}
	if in.NextScheduledDate != nil {
		d, err := parseOptionalDate("nextScheduledDate", *in.NextScheduledDate)
		if err != nil {
			return nil, err
		}
		record.NextScheduledDate = d
	}
	if in.Status != nil {
		status := entity.MaintenanceStatus(*in.Status)
		if !entity.ValidMaintenanceStatus(status) {
			return nil, domain.NewValidationError("status", "estado de mantenimiento desconocido")
		}
		record.Status = status
	}
	if record.NextScheduledDate != nil && record.NextScheduledDate.Before(record.MaintenanceDate) {
		return nil, domain.NewValidationError("nextScheduledDate", "debe ser igual o posterior a maintenanceDate")
	}
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(record), nil
}

// List lista todos los registros de mantenimiento.
func (uc *MaintenanceUseCase) List() ([]dto.MaintenanceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toMaintenanceResponse(r))
	}
	return items, nil
}

// ListByEquipment lista el historial de mantenimiento de un equipo.
func (uc *MaintenanceUseCase) ListByEquipment(equipmentID int64) ([]dto.MaintenanceResponse, error) {
	equipment, err := uc.equipmentRepo.GetByID(equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByEquipment(equipmentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toMaintenanceResponse(r))
	}
	return items, nil
}

// Delete elimina físicamente un registro de mantenimiento.
func (uc *MaintenanceUseCase) Delete(id int64) error {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMaintenanceResponse(r *entity.MaintenanceRecord) *dto.MaintenanceResponse {
	if r == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:                     r.ID,
		EquipmentID:            r.EquipmentID,
		EquipmentName:          r.EquipmentName,
		TechnicianID:           r.TechnicianID,
		PerformedBy:            r.PerformedBy,
		MaintenanceDate:        formatDate(r.MaintenanceDate),
		Type:                   string(r.Type),
		Description:            r.Description,
		Cost:                   r.Cost,
		NextScheduledDate:      formatOptionalDate(r.NextScheduledDate),
		Status:                 string(r.Status),
		SuggestedEquipmentDate: formatOptionalDate(r.NextScheduledDate),
		CreatedAt:              r.CreatedAt,
	}
}
