package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

// DashboardHandler maneja el panel principal.
type DashboardHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.ReportUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetData devuelve los contadores del panel y la actividad reciente.
// GET /api/dashboard
//
// Ante un fallo responde contadores en cero y actividad vacía con 200;
// el panel se pinta siempre y el detalle queda en el log.
func (h *DashboardHandler) GetData(c *fiber.Ctx) error {
	data, err := h.uc.GetDashboardData(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("datos del dashboard")
		return c.JSON(dto.DashboardData{
			Stats:          dto.DashboardStats{},
			RecentActivity: []dto.ActivityEntry{},
		})
	}
	return c.JSON(data)
}
