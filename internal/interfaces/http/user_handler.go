package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

// UserHandler maneja el directorio de usuarios (solo administradores).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List devuelve los usuarios del más reciente al más antiguo.
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listar usuarios")
		return c.JSON([]dto.UserResponse{})
	}
	return c.JSON(users)
}

// Add da de alta un usuario con id derivado del reloj.
// POST /api/users
func (h *UserHandler) Add(c *fiber.Ctx) error {
	var req dto.AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "JSON inválido",
		})
	}
	user, err := h.uc.Add(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Delete borra al usuario; su historial sobrevive como "Usuario Eliminado".
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "Usuario eliminado."})
}
