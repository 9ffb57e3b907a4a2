package repository

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Get devuelve (nil, nil) cuando el id no existe.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Delete(id int64) error
}
