package repository

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
// OrderNumber se asigna en el caso de uso antes de Create y el store debe
// rechazar duplicados (ErrDuplicate).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	List() ([]*entity.PurchaseOrder, error)
	Delete(id int64) error
}
