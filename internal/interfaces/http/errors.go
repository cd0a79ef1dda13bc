package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
)

// errBadQuery parámetros de query string que no parsean.
var errBadQuery = errors.New("parámetros inválidos")

// respondError traduce los errores del dominio a status HTTP y mensajes
// para el usuario. Errores no reconocidos responden 500 sin filtrar el
// detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBadQuery):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUERY", Message: "parámetros inválidos",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrBookNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "BOOK_NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "USER_NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicateCredential):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE_CREDENTIAL", Message: "El usuario con ese nombre de usuario o email ya existe.",
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INVALID_TRANSITION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrQRNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "QR_NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrQRMalformed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "QR_MALFORMED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrSeedDisabled):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "SEED_DISABLED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "DB_UNAVAILABLE", Message: "No se pudo conectar a la base de datos. Verifique que esté en ejecución.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Ocurrió un error inesperado.",
		})
	}
}

// duplicateBookMessage mensaje de conflicto con el id en cuestión.
func duplicateBookMessage(id string) string {
	return fmt.Sprintf("El libro con ID %s ya existe.", id)
}
