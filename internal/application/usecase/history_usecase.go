package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

// HistoryUseCase consulta del historial de movimientos con filtros
// conjuntivos (AND entre categorías, OR dentro de la búsqueda de texto).
type HistoryUseCase struct {
	movements repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movements repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movements: movements}
}

// Query devuelve los movimientos que satisfacen todos los filtros activos,
// del más reciente al más antiguo.
func (uc *HistoryUseCase) Query(ctx context.Context, q dto.HistoryQuery) ([]dto.HistoryEntryResponse, error) {
	filter, err := BuildHistoryFilter(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.movements.ListHistory(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("consultar historial: %w", err)
	}
	out := make([]dto.HistoryEntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HistoryEntryResponse{
			DateTime:      r.DateTime.Format(dto.DateTimeLayout),
			Book:          r.BookID,
			User:          r.UserName,
			PreviousState: r.PreviousState,
			NewState:      r.NewState,
			Action:        r.Action,
			Person:        r.Person,
			Observations:  r.Observations,
		})
	}
	return out, nil
}

// BuildHistoryFilter traduce los parámetros crudos del query string al
// filtro del repositorio:
//
//   - el término de búsqueda se normaliza a NFC (entrada descompuesta de
//     algunos teclados/SO no debe fallar contra el texto NFC de la DB);
//   - date_to se normaliza al final del día (23:59:59.999) para que el
//     límite superior sea inclusivo a nivel de fecha calendario.
func BuildHistoryFilter(q dto.HistoryQuery) (repository.HistoryFilter, error) {
	filter := repository.HistoryFilter{
		Query:  norm.NFC.String(strings.TrimSpace(q.Query)),
		Action: q.Action,
	}
	if q.DateFrom != "" {
		d, err := time.Parse(dto.DateLayout, q.DateFrom)
		if err != nil {
			return repository.HistoryFilter{}, domain.ErrInvalidInput
		}
		filter.DateFrom = &d
	}
	if q.DateTo != "" {
		d, err := time.Parse(dto.DateLayout, q.DateTo)
		if err != nil {
			return repository.HistoryFilter{}, domain.ErrInvalidInput
		}
		end := EndOfDay(d)
		filter.DateTo = &end
	}
	return filter, nil
}

// EndOfDay devuelve las 23:59:59.999 del día de t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}
