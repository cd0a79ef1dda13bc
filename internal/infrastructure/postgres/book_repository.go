package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo implementación del puerto BookRepository sobre PostgreSQL
// (usable con pool o tx).
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

// List devuelve los libros ordenados por fecha de ingreso descendente,
// con desempate por id descendente.
func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	query := `
		SELECT id, tomo, year, entry_date, status::TEXT
		FROM books ORDER BY entry_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Tomo, &b.Year, &b.EntryDate, &b.Status); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetByID obtiene un libro por id; nil, nil si no existe.
func (r *BookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	query := `
		SELECT id, tomo, year, entry_date, status::TEXT
		FROM books WHERE id = $1`
	var b entity.Book
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Tomo, &b.Year, &b.EntryDate, &b.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book by id: %w", err)
	}
	return &b, nil
}

// Create persiste un libro nuevo. Violación del PK -> ErrDuplicateBookID.
func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (id, tomo, year, entry_date, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		book.ID, book.Tomo, book.Year, book.EntryDate, book.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBookID
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// Update reescribe los campos editables del libro.
func (r *BookRepo) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books SET tomo = $2, year = $3, entry_date = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		book.ID, book.Tomo, book.Year, book.EntryDate, book.Status,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado.
func (r *BookRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE books SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update book status: %w", err)
	}
	return nil
}

// Delete elimina el libro por id; los movimientos caen en cascada (FK).
// No distingue entre fila borrada y fila inexistente: delete idempotente.
func (r *BookRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
