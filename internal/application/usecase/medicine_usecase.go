package usecase

import (
	"time"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

// MedicineUseCase casos de uso CRUD para medicamentos más los listados
// derivados (stock bajo, por vencer) proyectados con el evaluador de
// alerting sobre la colección completa.
type MedicineUseCase struct {
	repo repository.MedicineRepository
	cfg  alerting.Config
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository, cfg alerting.Config) *MedicineUseCase {
	return &MedicineUseCase{repo: repo, cfg: cfg}
}

// Create crea un medicamento tras validar campos requeridos y rangos.
func (uc *MedicineUseCase) Create(in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Category == "" {
		return nil, domain.NewValidationError("category", "es requerido")
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "debe ser un entero no negativo")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.NewValidationError("unitPrice", "debe ser >= 0")
	}
	expiry, err := parseDate("expiryDate", in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	medicine := &entity.Medicine{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		ExpiryDate:  expiry,
		BatchNumber: in.BatchNumber,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(medicine); err != nil {
		return nil, err
	}
	return uc.toResponse(medicine, now), nil
}

// GetByID obtiene un medicamento por ID.
func (uc *MedicineUseCase) GetByID(id int64) (*dto.MedicineResponse, error) {
	medicine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(medicine, time.Now()), nil
}

// Update aplica una actualización parcial.
func (uc *MedicineUseCase) Update(id int64, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		medicine.Name = *in.Name
	}
	if in.Description != nil {
		medicine.Description = *in.Description
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.NewValidationError("category", "no puede quedar vacío")
		}
		medicine.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.NewValidationError("quantity", "debe ser un entero no negativo")
		}
		medicine.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.NewValidationError("unitPrice", "debe ser >= 0")
		}
		medicine.UnitPrice = *in.UnitPrice
	}
	if in.ExpiryDate != nil {
		expiry, err := parseDate("expiryDate", *in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		medicine.ExpiryDate = expiry
	}
	if in.BatchNumber != nil {
		medicine.BatchNumber = *in.BatchNumber
	}
	if in.SupplierID != nil {
		medicine.SupplierID = in.SupplierID
	}
	medicine.UpdatedAt = time.Now()
	if err := uc.repo.Update(medicine); err != nil {
		return nil, err
	}
	return uc.toResponse(medicine, time.Now()), nil
}

// List lista todos los medicamentos.
func (uc *MedicineUseCase) List() ([]dto.MedicineResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *uc.toResponse(m, now))
	}
	return items, nil
}

// Delete elimina físicamente un medicamento.
func (uc *MedicineUseCase) Delete(id int64) error {
	medicine, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// LowStock lista medicamentos con cantidad bajo el umbral. threshold <= 0
// usa el umbral configurado. Proyección pura recomputada en cada llamada.
func (uc *MedicineUseCase) LowStock(threshold int) ([]dto.MedicineResponse, error) {
	if threshold <= 0 {
		threshold = uc.cfg.LowStockThreshold
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.MedicineResponse, 0)
	for _, m := range list {
		if alerting.IsLowStock(m.Quantity, threshold) {
			items = append(items, *uc.toResponse(m, now))
		}
	}
	return items, nil
}

// Expiring lista medicamentos por vencer dentro de la ventana. days <= 0 usa
// la ventana configurada. Los ya vencidos no entran (son "vencidos", no "por
// vencer").
func (uc *MedicineUseCase) Expiring(days int) ([]dto.MedicineResponse, error) {
	if days <= 0 {
		days = uc.cfg.ExpiryWindowDays
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.MedicineResponse, 0)
	for _, m := range list {
		if alerting.IsExpiringSoon(m.ExpiryDate, now, days) {
			items = append(items, *uc.toResponse(m, now))
		}
	}
	return items, nil
}

// toResponse arma la respuesta con los estados derivados evaluados a "now".
func (uc *MedicineUseCase) toResponse(m *entity.Medicine, now time.Time) *dto.MedicineResponse {
	if m == nil {
		return nil
	}
	expired := alerting.IsExpired(m.ExpiryDate, now)
	return &dto.MedicineResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Category:     m.Category,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		ExpiryDate:   formatDate(m.ExpiryDate),
		BatchNumber:  m.BatchNumber,
		SupplierID:   m.SupplierID,
		SupplierName: m.SupplierName,
		Expired:      expired,
		ExpiringSoon: !expired && alerting.IsExpiringSoon(m.ExpiryDate, now, uc.cfg.ExpiryWindowDays),
		LowStock:     alerting.IsLowStock(m.Quantity, uc.cfg.LowStockThreshold),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
