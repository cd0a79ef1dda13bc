package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

// ReportHandler maneja los reportes agregados.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// MonthlyMovements pivote mensual de los últimos 12 meses.
// GET /api/reports/monthly-movements
func (h *ReportHandler) MonthlyMovements(c *fiber.Ctx) error {
	rows, err := h.uc.GetMonthlyMovements(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("movimientos mensuales")
		return c.JSON([]dto.MonthlyMovement{})
	}
	return c.JSON(rows)
}

// StatusDistribution conteo y porcentaje de libros por estado, con las
// tres porciones siempre presentes.
// GET /api/reports/status-distribution
func (h *ReportHandler) StatusDistribution(c *fiber.Ctx) error {
	rows, err := h.uc.GetStatusDistribution(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("distribución por estado")
		return c.JSON([]dto.StatusDistribution{})
	}
	return c.JSON(rows)
}
