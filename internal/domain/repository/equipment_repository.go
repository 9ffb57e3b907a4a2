package repository

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// EquipmentRepository define el puerto de persistencia para Equipment.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id int64) (*entity.Equipment, error)
	Update(equipment *entity.Equipment) error
	List() ([]*entity.Equipment, error)
	Delete(id int64) error
}
