package repository

import (
	"context"
	"time"

	"github.com/jhoicas/registro-libros/internal/domain/entity"
)

// HistoryFilter filtros opcionales y conjuntivos (AND) del historial.
type HistoryFilter struct {
	Query    string     // substring case-insensitive sobre book_id, observations, user name y person (OR entre campos)
	Action   string     // match exacto contra el enum; "" o "all" desactiva
	DateFrom *time.Time // inclusivo
	DateTo   *time.Time // inclusivo; el caller lo normaliza a fin de día
}

// HistoryResult fila del historial: movimiento + libro + usuario resueltos.
// Lo produce la DB; el use case lo convierte en DTO.
type HistoryResult struct {
	DateTime      time.Time
	BookID        string
	UserName      string // DeletedUserLabel si el usuario fue borrado
	PreviousState *string
	NewState      string
	Action        string
	Person        *string
	Observations  *string
}

// MovementRepository define el puerto de persistencia para Movement.
// El log es append-only: no existen operaciones de update ni delete.
type MovementRepository interface {
	// Create inserta el movimiento; si DateTime es cero la DB usa NOW().
	Create(ctx context.Context, m *entity.Movement) error
	// ListHistory devuelve los movimientos que satisfacen el filtro,
	// ordenados por date_time DESC.
	ListHistory(ctx context.Context, filter HistoryFilter) ([]HistoryResult, error)
}
