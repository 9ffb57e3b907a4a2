package repository

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// MedicineRepository define el puerto de persistencia para Medicine.
// Los listados derivados (stock bajo, por vencer) NO son consultas del
// store: se proyectan en el caso de uso con el evaluador de alerting sobre
// List(), recomputados en cada llamada.
type MedicineRepository interface {
	Create(medicine *entity.Medicine) error
	GetByID(id int64) (*entity.Medicine, error)
	Update(medicine *entity.Medicine) error
	List() ([]*entity.Medicine, error)
	Delete(id int64) error
}
