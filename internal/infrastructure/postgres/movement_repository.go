package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El log es append-only: solo hay insert y lectura.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento. Con DateTime en cero la DB pone NOW().
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.DateTime.IsZero() {
		query := `
			INSERT INTO movements (book_id, user_id, previous_state, new_state, action, person, observations)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := r.q.Exec(ctx, query,
			m.BookID, m.UserID, m.PreviousState, m.NewState, m.Action, m.Person, m.Observations,
		)
		if err != nil {
			return fmt.Errorf("insert movement: %w", err)
		}
		return nil
	}
	query := `
		INSERT INTO movements (date_time, book_id, user_id, previous_state, new_state, action, person, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.DateTime, m.BookID, m.UserID, m.PreviousState, m.NewState, m.Action, m.Person, m.Observations,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListHistory devuelve movimientos + libro + usuario según el filtro,
// del más reciente al más antiguo. Los filtros activos se combinan con
// AND; la búsqueda de texto es OR entre book_id, observations, nombre de
// usuario y person. Usuario borrado -> "Usuario Eliminado".
func (r *MovementRepo) ListHistory(ctx context.Context, filter repository.HistoryFilter) ([]repository.HistoryResult, error) {
	query := `
		SELECT
			m.date_time,
			m.book_id,
			COALESCE(u.name, 'Usuario Eliminado') AS user_name,
			m.previous_state::TEXT,
			m.new_state::TEXT,
			m.action::TEXT,
			m.person,
			m.observations
		FROM movements m
		LEFT JOIN users u ON m.user_id = u.id
		WHERE 1 = 1`
	var args []any
	pos := 1

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query += fmt.Sprintf(` AND (
			LOWER(m.book_id) LIKE $%d OR
			LOWER(m.observations) LIKE $%d OR
			LOWER(u.name) LIKE $%d OR
			LOWER(m.person) LIKE $%d
		)`, pos, pos, pos, pos)
		args = append(args, pattern)
		pos++
	}
	if filter.Action != "" && filter.Action != "all" {
		query += fmt.Sprintf(" AND m.action = $%d", pos)
		args = append(args, filter.Action)
		pos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND m.date_time >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND m.date_time <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	query += " ORDER BY m.date_time DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []repository.HistoryResult
	for rows.Next() {
		var h repository.HistoryResult
		if err := rows.Scan(
			&h.DateTime, &h.BookID, &h.UserName,
			&h.PreviousState, &h.NewState, &h.Action,
			&h.Person, &h.Observations,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
