package repository

import (
	"context"
	"time"
)

// DashboardCounts contadores crudos del panel principal.
type DashboardCounts struct {
	TotalBooks     int
	ArchivedBooks  int
	InUseBooks     int
	DailyMovements int // movimientos en las últimas 24 horas
}

// ActivityResult movimiento reciente con libro y usuario resueltos.
type ActivityResult struct {
	Action   string
	Time     time.Time
	BookID   string
	UserName string // DeletedUserLabel si el usuario fue borrado
}

// MonthlyMovementResult fila del pivote mensual. Solo aparecen meses con
// al menos un movimiento (sin relleno de ceros); Edición queda fuera.
type MonthlyMovementResult struct {
	Month        string // YYYY-MM
	Retiros      int
	Devoluciones int
	Creados      int
	Archivados   int
}

// StatusCountResult conteo crudo por estado; la DB solo devuelve estados
// con libros, el use case rellena los faltantes con cero.
type StatusCountResult struct {
	Status string
	Count  int
}

// ReportRepository define las consultas de lectura para el dashboard y los
// reportes. Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetDashboardCounts devuelve los cuatro contadores del panel en una
	// sola consulta (subselects).
	GetDashboardCounts(ctx context.Context) (DashboardCounts, error)

	// GetRecentActivity devuelve los `limit` movimientos más recientes
	// (date_time DESC) con libro y usuario resueltos.
	GetRecentActivity(ctx context.Context, limit int) ([]ActivityResult, error)

	// GetMonthlyMovements pivote por mes de los últimos 12 meses, orden
	// ascendente por mes.
	GetMonthlyMovements(ctx context.Context) ([]MonthlyMovementResult, error)

	// GetStatusCounts conteo de libros agrupado por estado.
	GetStatusCounts(ctx context.Context) ([]StatusCountResult, error)
}
