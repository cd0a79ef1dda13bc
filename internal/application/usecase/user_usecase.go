package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

// UserUseCase directorio de operadores: listado, alta y baja.
type UserUseCase struct {
	users repository.UserRepository
	// now es inyectable para que los tests controlen el id generado.
	now func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users, now: time.Now}
}

// List devuelve los usuarios del más reciente al más antiguo.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Add inserta un usuario con id derivado del reloj (user_<unixmilli>).
// Retorna domain.ErrDuplicateCredential si username o email colisionan.
func (uc *UserUseCase) Add(ctx context.Context, in dto.AddUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Username == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEstandar
	}
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	user := &entity.User{
		ID:        fmt.Sprintf("user_%d", now.UnixMilli()),
		Name:      in.Name,
		Username:  in.Username,
		Email:     in.Email,
		Role:      role,
		CreatedAt: now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete borra al usuario. Sus movimientos NO se borran: conservan el
// user_id colgante y el historial los muestra como "Usuario Eliminado".
// Borrar un id inexistente no es error.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(dto.DateLayout),
	}
}
