// Package auth emite tokens de acceso. El sistema no almacena credenciales
// (la pantalla de acceso original era un selector de rol): el token aporta
// identidad y rol para atribuir movimientos y proteger rutas de admin,
// no es autenticación por contraseña.
package auth

import (
	"context"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
	"github.com/jhoicas/registro-libros/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de acceso.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login busca al usuario por username y emite un JWT con su rol.
// Retorna domain.ErrUserNotFound si el username no existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format(dto.DateLayout),
		},
	}, nil
}
