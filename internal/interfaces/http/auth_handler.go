package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/auth"
	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
)

// AuthHandler maneja los endpoints de acceso.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login emite un token para el usuario indicado.
// POST /api/auth/login
//
// El sistema no valida contraseñas: el acceso identifica al operador
// para atribuir movimientos y aplicar su rol.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "JSON inválido",
		})
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_LOGIN", Message: "Usuario no encontrado.",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(resp)
}
