package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/entity"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de usuarios (solo ADMIN por el borde
// HTTP). La baja es lógica (Active=false) y un usuario nunca puede darse de
// baja ni desactivarse a sí mismo: eso se rechaza antes de tocar el store.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con password hasheado (bcrypt). Username duplicado
// devuelve ErrDuplicate (Conflict para el caller).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" {
		return nil, domain.NewValidationError("username", "es requerido")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "es requerido")
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.NewValidationError("role", "debe ser ADMIN, PHARMACIST o TECHNICIAN")
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Email != "" {
		byEmail, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if byEmail != nil {
			return nil, domain.ErrDuplicate
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID (sin hash).
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial. Password presente se re-hashea;
// ausente conserva el hash. Desactivarse a sí mismo vía Active=false está
// prohibido.
func (uc *UserUseCase) Update(actingUserID, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Active != nil && !*in.Active && actingUserID == id {
		return nil, domain.ErrSelfDeactivate
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Username != nil && *in.Username != user.Username {
		if *in.Username == "" {
			return nil, domain.NewValidationError("username", "no puede quedar vacío")
		}
		existing, err := uc.repo.GetByUsername(*in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		if *in.Email != "" {
			byEmail, err := uc.repo.GetByEmail(*in.Email)
			if err != nil {
				return nil, err
			}
			if byEmail != nil {
				return nil, domain.ErrDuplicate
			}
		}
		user.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.NewValidationError("role", "debe ser ADMIN, PHARMACIST o TECHNICIAN")
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios (sin hashes).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Delete da de baja lógica (Active=false). La auto-baja se rechaza con
// ErrSelfDeactivate ANTES de cualquier llamada al store.
func (uc *UserUseCase) Delete(actingUserID, id int64) error {
	if actingUserID == id {
		return domain.ErrSelfDeactivate
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// ToggleActive invierte el flag Active. Auto-desactivarse está prohibido
// (activarse a sí mismo sería redundante: la sesión exige estar activo).
func (uc *UserUseCase) ToggleActive(actingUserID, id int64) (*dto.UserResponse, error) {
	if actingUserID == id {
		return nil, domain.ErrSelfDeactivate
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Active = !user.Active
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
