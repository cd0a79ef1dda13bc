package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

// BookHandler maneja los endpoints del inventario de libros.
type BookHandler struct {
	uc  *usecase.BookUseCase
	log *logger.Logger
}

// NewBookHandler construye el handler.
func NewBookHandler(uc *usecase.BookUseCase, log *logger.Logger) *BookHandler {
	return &BookHandler{uc: uc, log: log}
}

// List devuelve el inventario completo ordenado por fecha de ingreso.
// GET /api/books
//
// Ante un fallo de lectura responde lista vacía con 200: la pantalla
// de inventario nunca se cae, el detalle queda en el log.
func (h *BookHandler) List(c *fiber.Ctx) error {
	books, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listar libros")
		return c.JSON([]dto.BookResponse{})
	}
	return c.JSON(books)
}

// GetByID devuelve un libro por id.
// GET /api/books/:id
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	book, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(book)
}

// Add da de alta un libro y su movimiento de Creación.
// POST /api/books
func (h *BookHandler) Add(c *fiber.Ctx) error {
	var req dto.AddBookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "JSON inválido",
		})
	}
	book, err := h.uc.Add(c.Context(), GetUserID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateBookID) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "DUPLICATE_BOOK", Message: duplicateBookMessage(req.ID),
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, err)
		}
		h.log.Error().Err(err).Str("book_id", req.ID).Msg("agregar libro")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "No se pudo agregar el libro.",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// Update edita tomo, año y fecha de ingreso, y registra la Edición.
// PUT /api/books/:id
func (h *BookHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "JSON inválido",
		})
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "Libro actualizado."})
}

// Delete borra el libro y, en cascada, todos sus movimientos.
// DELETE /api/books/:id
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		h.log.Error().Err(err).Str("book_id", c.Params("id")).Msg("eliminar libro")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "No se pudo eliminar el libro.",
		})
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "Libro eliminado."})
}
