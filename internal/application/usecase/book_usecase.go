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

// BookUseCase ciclo de vida de los libros: listado, alta, edición y baja.
// El alta y la edición escriben también su movimiento de auditoría dentro
// de la misma transacción.
type BookUseCase struct {
	books repository.BookRepository
	tx    TxRunner
	cache *ListCache
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(books repository.BookRepository, tx TxRunner, cache *ListCache) *BookUseCase {
	return &BookUseCase{books: books, tx: tx, cache: cache}
}

// List devuelve los libros ordenados por fecha de ingreso descendente
// (desempate por id descendente). Sirve desde el caché cuando hay hit.
func (uc *BookUseCase) List(ctx context.Context) ([]dto.BookResponse, error) {
	if cached, ok := uc.cache.Get(); ok {
		return cached, nil
	}
	books, err := uc.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar libros: %w", err)
	}
	out := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	uc.cache.Set(out)
	return out, nil
}

// Add inserta un libro nuevo y su movimiento de Creación en una sola
// transacción. Status vacío equivale a Disponible; EntryDate vacío a hoy.
// Retorna domain.ErrDuplicateBookID si el id ya existe.
func (uc *BookUseCase) Add(ctx context.Context, userID string, in dto.AddBookRequest) (*dto.BookResponse, error) {
	if in.ID == "" || in.Tomo == "" || in.Year <= 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusDisponible
	}
	if !entity.IsValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	entryDate := time.Now()
	if in.EntryDate != "" {
		d, err := time.Parse(dto.DateLayout, in.EntryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entryDate = d
	}

	book := &entity.Book{
		ID:        in.ID,
		Tomo:      in.Tomo,
		Year:      in.Year,
		EntryDate: entryDate,
		Status:    status,
	}
	obs := fmt.Sprintf("Creación inicial del libro de %s del año %d.", book.Tomo, book.Year)

	err := uc.tx.Run(ctx, func(books repository.BookRepository, movements repository.MovementRepository) error {
		if err := books.Create(ctx, book); err != nil {
			return err
		}
		return movements.Create(ctx, &entity.Movement{
			BookID:       book.ID,
			UserID:       optional(userID),
			NewState:     book.Status,
			Action:       entity.ActionCreacion,
			Observations: &obs,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate()
	resp := toBookResponse(book)
	return &resp, nil
}

// Update reescribe tomo, año y fecha de ingreso, y registra un movimiento
// de Edición (el estado no cambia por esta vía).
func (uc *BookUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateBookRequest) error {
	if in.Tomo == "" || in.Year <= 0 {
		return domain.ErrInvalidInput
	}
	book, err := uc.books.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("buscar libro: %w", err)
	}
	if book == nil {
		return domain.ErrBookNotFound
	}
	entryDate := book.EntryDate
	if in.EntryDate != "" {
		d, err := time.Parse(dto.DateLayout, in.EntryDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		entryDate = d
	}
	prev := book.Status
	book.Tomo = in.Tomo
	book.Year = in.Year
	book.EntryDate = entryDate

	err = uc.tx.Run(ctx, func(books repository.BookRepository, movements repository.MovementRepository) error {
		if err := books.Update(ctx, book); err != nil {
			return err
		}
		return movements.Create(ctx, &entity.Movement{
			BookID:        book.ID,
			UserID:        optional(userID),
			PreviousState: &prev,
			NewState:      book.Status,
			Action:        entity.ActionEdicion,
			Observations:  optional(in.Observations),
		})
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}

// Delete borra el libro; sus movimientos caen en cascada en la DB.
// Borrar un id inexistente no es error (delete idempotente).
func (uc *BookUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar libro: %w", err)
	}
	uc.cache.Invalidate()
	return nil
}

// GetByID devuelve un libro o domain.ErrBookNotFound.
func (uc *BookUseCase) GetByID(ctx context.Context, id string) (*dto.BookResponse, error) {
	book, err := uc.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar libro: %w", err)
	}
	if book == nil {
		return nil, domain.ErrBookNotFound
	}
	resp := toBookResponse(book)
	return &resp, nil
}

func toBookResponse(b *entity.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:        b.ID,
		Tomo:      b.Tomo,
		Year:      b.Year,
		EntryDate: b.EntryDate.Format(dto.DateLayout),
		Status:    b.Status,
	}
}

// optional convierte "" en nil para columnas nullable.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
