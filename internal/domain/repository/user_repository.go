package repository

import (
	"context"

	"github.com/jhoicas/registro-libros/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// List devuelve los usuarios ordenados por created_at DESC.
	List(ctx context.Context) ([]*entity.User, error)
	// GetByID devuelve nil, nil si el usuario no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername devuelve nil, nil si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create retorna domain.ErrDuplicateCredential si username o email colisionan.
	Create(ctx context.Context, user *entity.User) error
	// Delete es idempotente. Los movimientos del usuario NO caen en cascada:
	// conservan un user_id colgante que el historial muestra como placeholder.
	Delete(ctx context.Context, id string) error
}
