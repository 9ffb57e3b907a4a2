package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
	"github.com/jhoicas/hemis-api/internal/domain/repository"
	"github.com/jhoicas/hemis-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con username/password.
// El registro de usuarios no es público: lo hace un ADMIN vía /api/users.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, exige cuenta activa y devuelve el token
// más el perfil mínimo. Credenciales inválidas y usuario inexistente se
// reportan igual (ErrUnauthorized) para no filtrar qué usuarios existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.NewValidationError("username", "username y password son requeridos")
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
	}, nil
}
