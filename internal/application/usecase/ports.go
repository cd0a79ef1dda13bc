package usecase

import (
	"context"

	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una transacción.
// Lo implementa postgres.TxRunner; alta de libro y registro de movimiento
// escriben libro + movimiento de forma atómica a través de este puerto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		books repository.BookRepository,
		movements repository.MovementRepository,
	) error) error
}
