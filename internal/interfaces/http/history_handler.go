package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

// HistoryHandler maneja la consulta del historial de movimientos.
type HistoryHandler struct {
	uc  *usecase.HistoryUseCase
	log *logger.Logger
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{uc: uc, log: log}
}

// Query devuelve el historial filtrado, del más reciente al más antiguo.
// GET /api/history?query=&action=&date_from=&date_to=
//
// Fechas mal formadas responden 400; un fallo de lectura responde lista
// vacía con 200 y deja el detalle en el log.
func (h *HistoryHandler) Query(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, errBadQuery)
	}
	entries, err := h.uc.Query(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, err)
		}
		h.log.Error().Err(err).Msg("consultar historial")
		return c.JSON([]dto.HistoryEntryResponse{})
	}
	return c.JSON(entries)
}
