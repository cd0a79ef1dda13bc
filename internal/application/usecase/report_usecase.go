package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/domain/repository"
)

const dashboardRecentActivity = 5 // movimientos en el widget de actividad

// ReportUseCase arma el panel principal y los reportes derivados.
//
// Fuente de datos: ReportRepository (consultas read-only).
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// GetDashboardData construye el panel: contadores + actividad reciente.
// Las dos consultas corren en paralelo.
func (uc *ReportUseCase) GetDashboardData(ctx context.Context) (*dto.DashboardData, error) {
	type countsResult struct {
		counts repository.DashboardCounts
		err    error
	}
	type activityResult struct {
		rows []repository.ActivityResult
		err  error
	}

	countsCh := make(chan countsResult, 1)
	activityCh := make(chan activityResult, 1)

	go func() {
		c, err := uc.reports.GetDashboardCounts(ctx)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		rows, err := uc.reports.GetRecentActivity(ctx, dashboardRecentActivity)
		activityCh <- activityResult{rows, err}
	}()

	counts := <-countsCh
	activity := <-activityCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if activity.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", activity.err)
	}

	recent := make([]dto.ActivityEntry, 0, len(activity.rows))
	for _, a := range activity.rows {
		recent = append(recent, dto.ActivityEntry{
			User:   a.UserName,
			Action: a.Action,
			Time:   a.Time.Format(dto.ClockLayout),
			Book:   a.BookID,
		})
	}

	return &dto.DashboardData{
		Stats: dto.DashboardStats{
			TotalBooks:     counts.counts.TotalBooks,
			ArchivedBooks:  counts.counts.ArchivedBooks,
			InUseBooks:     counts.counts.InUseBooks,
			DailyMovements: counts.counts.DailyMovements,
		},
		RecentActivity: recent,
	}, nil
}

// GetMonthlyMovements pivote mensual de los últimos 12 meses, ascendente.
// Los meses sin movimientos no se rellenan: el resultado tiene huecos.
func (uc *ReportUseCase) GetMonthlyMovements(ctx context.Context) ([]dto.MonthlyMovement, error) {
	rows, err := uc.reports.GetMonthlyMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("movimientos mensuales: %w", err)
	}
	out := make([]dto.MonthlyMovement, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyMovement{
			Month:        r.Month,
			Retiros:      r.Retiros,
			Devoluciones: r.Devoluciones,
			Creados:      r.Creados,
			Archivados:   r.Archivados,
		})
	}
	return out, nil
}

// GetStatusDistribution devuelve exactamente un registro por cada estado
// del enum, con cero para los estados sin libros. A diferencia del pivote
// mensual, este reporte SÍ se rellena: el gráfico de torta necesita las
// tres porciones siempre.
func (uc *ReportUseCase) GetStatusDistribution(ctx context.Context) ([]dto.StatusDistribution, error) {
	rows, err := uc.reports.GetStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("distribución por estado: %w", err)
	}

	counts := make(map[string]int, len(rows))
	total := 0
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}

	out := make([]dto.StatusDistribution, 0, 3)
	for _, status := range entity.AllStatuses() {
		value := counts[status]
		pct := decimal.Zero
		if total > 0 {
			pct = decimal.NewFromInt(int64(value)).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(total))).
				Round(2)
		}
		out = append(out, dto.StatusDistribution{
			Name:       status,
			Value:      value,
			Percentage: pct,
		})
	}
	return out, nil
}
