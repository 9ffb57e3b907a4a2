package usecase

import (
	"time"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

// EquipmentUseCase casos de uso CRUD para equipos más el listado derivado de
// mantenimiento pendiente.
type EquipmentUseCase struct {
	repo repository.EquipmentRepository
	cfg  alerting.Config
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, cfg alerting.Config) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, cfg: cfg}
}

// Create crea un equipo. Status vacío aplica el default OPERATIONAL.
func (uc *EquipmentUseCase) Create(in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Category == "" {
		return nil, domain.NewValidationError("category", "es requerido")
	}
	if in.PurchasePrice.IsNegative() {
		return nil, domain.NewValidationError("purchasePrice", "debe ser >= 0")
	}
	status := entity.EquipmentStatus(in.Status)
	if in.Status == "" {
		status = entity.EquipmentOperational
	} else if !entity.ValidEquipmentStatus(status) {
		return nil, domain.NewValidationError("status", "estado de equipo desconocido")
	}
	purchaseDate, err := parseOptionalDate("purchaseDate", in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	nextMaintenance, err := parseOptionalDate("nextMaintenanceDate", in.NextMaintenanceDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	equipment := &entity.Equipment{
		Name:                in.Name,
		Description:         in.Description,
		Category:            in.Category,
		SerialNumber:        in.SerialNumber,
		Model:               in.Model,
		SupplierID:          in.SupplierID,
		PurchaseDate:        purchaseDate,
		PurchasePrice:       in.PurchasePrice,
		Status:              status,
		NextMaintenanceDate: nextMaintenance,
		Location:            in.Location,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(equipment); err != nil {
		return nil, err
	}
	return uc.toResponse(equipment, now), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(id int64) (*dto.EquipmentResponse, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(equipment, time.Now()), nil
}

// Update aplica una actualización parcial. El estado operativo es editable
// libremente: no hay máquina de estados para equipos.
func (uc *EquipmentUseCase) Update(id int64, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		equipment.Name = *in.Name
	}
	if in.Description != nil {
		equipment.Description = *in.Description
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.NewValidationError("category", "no puede quedar vacío")
		}
		equipment.Category = *in.Category
	}
	if in.SerialNumber != nil {
		equipment.SerialNumber = *in.SerialNumber
	}
	if in.Model != nil {
		equipment.Model = *in.Model
	}
	if in.SupplierID != nil {
		equipment.SupplierID = in.SupplierID
	}
	if in.PurchaseDate != nil {
		d, err := parseOptionalDate("purchaseDate", *in.PurchaseDate)
		if err != nil {
			return nil, err
		}
		equipment.PurchaseDate = d
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.NewValidationError("purchasePrice", "debe ser >= 0")
		}
		equipment.PurchasePrice = *in.PurchasePrice
	}
	if in.Status != nil {
		status := entity.EquipmentStatus(*in.Status)
		if !entity.ValidEquipmentStatus(status) {
			return nil, domain.NewValidationError("status", "estado de equipo desconocido")
		}
		equipment.Status = status
	}
	if in.NextMaintenanceDate != nil {
		d, err := parseOptionalDate("nextMaintenanceDate", *in.NextMaintenanceDate)
		if err != nil {
			return nil, err
		}
		equipment.NextMaintenanceDate = d
	}
	if in.Location != nil {
		equipment.Location = *in.Location
	}
	equipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(equipment); err != nil {
		return nil, err
	}
	return uc.toResponse(equipment, time.Now()), nil
}

// List lista todos los equipos.
func (uc *EquipmentUseCase) List() ([]dto.EquipmentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *uc.toResponse(e, now))
	}
	return items, nil
}

// Delete elimina físicamente un equipo.
func (uc *EquipmentUseCase) Delete(id int64) error {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if equipment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// MaintenanceDue lista equipos con mantenimiento dentro de la ventana o ya
// vencido. days <= 0 usa la ventana configurada.
func (uc *EquipmentUseCase) MaintenanceDue(days int) ([]dto.EquipmentResponse, error) {
	if days <= 0 {
		days = uc.cfg.MaintenanceWindowDays
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.EquipmentResponse, 0)
	for _, e := range list {
		if alerting.IsMaintenanceDue(e.NextMaintenanceDate, now, days) {
			items = append(items, *uc.toResponse(e, now))
		}
	}
	return items, nil
}

func (uc *EquipmentUseCase) toResponse(e *entity.Equipment, now time.Time) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:                  e.ID,
		Name:                e.Name,
		Description:         e.Description,
		Category:            e.Category,
		SerialNumber:        e.SerialNumber,
		Model:               e.Model,
		SupplierID:          e.SupplierID,
		SupplierName:        e.SupplierName,
		PurchaseDate:        formatOptionalDate(e.PurchaseDate),
		PurchasePrice:       e.PurchasePrice,
		Status:              string(e.Status),
		NextMaintenanceDate: formatOptionalDate(e.NextMaintenanceDate),
		Location:            e.Location,
		MaintenanceDue:      alerting.IsMaintenanceDue(e.NextMaintenanceDate, now, uc.cfg.MaintenanceWindowDays),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
