package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y los reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetDashboardCounts devuelve los cuatro contadores del panel en una sola
// consulta con subselects.
func (r *ReportRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM books)                                                  AS total_books,
	    (SELECT COUNT(*) FROM books WHERE status = 'Archivado')                       AS archived_books,
	    (SELECT COUNT(*) FROM books WHERE status = 'En Uso')                          AS in_use_books,
	    (SELECT COUNT(*) FROM movements WHERE date_time >= NOW() - INTERVAL '24 hours') AS daily_movements`

	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query).Scan(
		&c.TotalBooks, &c.ArchivedBooks, &c.InUseBooks, &c.DailyMovements,
	)
	if err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("reports.GetDashboardCounts: %w", err)
	}
	return c, nil
}

// GetRecentActivity devuelve los `limit` movimientos más recientes con
// libro y usuario resueltos (placeholder si el usuario fue borrado).
func (r *ReportRepo) GetRecentActivity(ctx context.Context, limit int) ([]repository.ActivityResult, error) {
	const query = `
	SELECT
	    m.action::TEXT,
	    m.date_time,
	    b.id AS book,
	    COALESCE(u.name, 'Usuario Eliminado') AS user_name
	FROM movements m
	JOIN books b ON m.book_id = b.id
	LEFT JOIN users u ON m.user_id = u.id
	ORDER BY m.date_time DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetRecentActivity: %w", err)
	}
	defer rows.Close()
	var list []repository.ActivityResult
	for rows.Next() {
		var a repository.ActivityResult
		if err := rows.Scan(&a.Action, &a.Time, &a.BookID, &a.UserName); err != nil {
			return nil, fmt.Errorf("reports.GetRecentActivity scan: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetMonthlyMovements pivote mensual de los últimos 12 meses, ascendente.
// Solo aparecen meses con movimientos; Edición queda fuera del pivote.
func (r *ReportRepo) GetMonthlyMovements(ctx context.Context) ([]repository.MonthlyMovementResult, error) {
	const query = `
	SELECT
	    TO_CHAR(date_trunc('month', date_time), 'YYYY-MM')  AS month,
	    COUNT(*) FILTER (WHERE action = 'Retiro')           AS retiros,
	    COUNT(*) FILTER (WHERE action = 'Devolución')       AS devoluciones,
	    COUNT(*) FILTER (WHERE action = 'Creación')         AS creados,
	    COUNT(*) FILTER (WHERE action = 'Archivado')        AS archivados
	FROM movements
	WHERE date_time > NOW() - INTERVAL '12 months'
	GROUP BY month
	ORDER BY month ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetMonthlyMovements: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyMovementResult
	for rows.Next() {
		var m repository.MonthlyMovementResult
		if err := rows.Scan(&m.Month, &m.Retiros, &m.Devoluciones, &m.Creados, &m.Archivados); err != nil {
			return nil, fmt.Errorf("reports.GetMonthlyMovements scan: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetStatusCounts conteo de libros agrupado por estado. La DB solo
// devuelve estados con libros; el use case rellena los faltantes.
func (r *ReportRepo) GetStatusCounts(ctx context.Context) ([]repository.StatusCountResult, error) {
	const query = `
	SELECT status::TEXT AS name, COUNT(*) AS value
	FROM books
	GROUP BY status`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetStatusCounts: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusCountResult
	for rows.Next() {
		var s repository.StatusCountResult
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, fmt.Errorf("reports.GetStatusCounts scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
