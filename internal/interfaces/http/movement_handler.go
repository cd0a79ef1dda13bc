package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
)

// MovementHandler maneja el registro de transiciones de estado.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register aplica una acción (Retiro, Devolución, Archivado, Edición)
// sobre el libro y escribe el movimiento de auditoría.
// POST /api/books/:id/movements
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "JSON inválido",
		})
	}
	if err := h.uc.Register(c.Context(), c.Params("id"), GetUserID(c), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "Movimiento registrado."})
}
