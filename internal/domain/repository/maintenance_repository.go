package repository

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// MaintenanceRepository define el puerto de persistencia para MaintenanceRecord.
type MaintenanceRepository interface {
	Create(record *entity.MaintenanceRecord) error
	GetByID(id int64) (*entity.MaintenanceRecord, error)
	Update(record *entity.MaintenanceRecord) error
	List() ([]*entity.MaintenanceRecord, error)
	ListByEquipment(equipmentID int64) ([]*entity.MaintenanceRecord, error)
	Delete(id int64) error
}
