package repository

import (
	"context"

	"github.com/jhoicas/registro-libros/internal/domain/entity"
)

// BookRepository define el puerto de persistencia para Book (DIP).
type BookRepository interface {
	// List devuelve los libros ordenados por entry_date DESC, id DESC.
	List(ctx context.Context) ([]*entity.Book, error)
	// GetByID devuelve nil, nil si el libro no existe.
	GetByID(ctx context.Context, id string) (*entity.Book, error)
	// Create retorna domain.ErrDuplicateBookID si el id ya existe (23505).
	Create(ctx context.Context, book *entity.Book) error
	// Update reescribe tomo, year, entry_date y status.
	Update(ctx context.Context, book *entity.Book) error
	// UpdateStatus cambia solo el estado del libro.
	UpdateStatus(ctx context.Context, id, status string) error
	// Delete es idempotente: borrar un id inexistente no es error.
	// Los movimientos del libro caen en cascada (FK ON DELETE CASCADE).
	Delete(ctx context.Context, id string) error
}
