package repository

import "github.com/jhoicas/hemis-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// No hay Delete físico: la baja de usuarios es lógica vía Deactivate para
// preservar el historial referencial (órdenes, mantenimientos).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Deactivate(id int64) error
}
