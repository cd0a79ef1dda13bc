package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

// MovementUseCase punto de entrada único para registrar transiciones de
// estado: valida la transición contra las reglas del dominio y escribe el
// nuevo estado del libro y el movimiento en una sola transacción. El estado
// del libro y la bitácora no pueden divergir por esta vía.
type MovementUseCase struct {
	books repository.BookRepository
	tx    TxRunner
	cache *ListCache
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(books repository.BookRepository, tx TxRunner, cache *ListCache) *MovementUseCase {
	return &MovementUseCase{books: books, tx: tx, cache: cache}
}

// Register aplica la acción sobre el libro.
//
//   - Retiro requiere `person` (la persona externa que se lleva el tomo).
//   - Creación no se acepta aquí: solo ocurre al dar de alta el libro.
//   - Transición ilegal (ej. Retiro sobre un libro Archivado) retorna
//     domain.ErrInvalidTransition sin tocar la DB.
func (uc *MovementUseCase) Register(ctx context.Context, bookID, userID string, in dto.RegisterMovementRequest) error {
	if !entity.IsValidAction(in.Action) || in.Action == entity.ActionCreacion {
		return domain.ErrInvalidInput
	}
	if in.Action == entity.ActionRetiro && in.Person == "" {
		return domain.ErrInvalidInput
	}

	book, err := uc.books.GetByID(ctx, bookID)
	if err != nil {
		return fmt.Errorf("buscar libro: %w", err)
	}
	if book == nil {
		return domain.ErrBookNotFound
	}

	next, ok := entity.ResultingStatus(book.Status, in.Action)
	if !ok {
		return domain.ErrInvalidTransition
	}

	prev := book.Status
	err = uc.tx.Run(ctx, func(books repository.BookRepository, movements repository.MovementRepository) error {
		if next != prev {
			if err := books.UpdateStatus(ctx, book.ID, next); err != nil {
				return err
			}
		}
		return movements.Create(ctx, &entity.Movement{
			BookID:        book.ID,
			UserID:        optional(userID),
			PreviousState: &prev,
			NewState:      next,
			Action:        in.Action,
			Person:        optional(in.Person),
			Observations:  optional(in.Observations),
		})
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}
