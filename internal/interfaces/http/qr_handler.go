package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/qr"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
)

// QRHandler maneja la generación y lectura de etiquetas QR.
type QRHandler struct {
	books *usecase.BookUseCase
	qr    *qr.UseCase
}

// NewQRHandler construye el handler.
func NewQRHandler(books *usecase.BookUseCase, qrUC *qr.UseCase) *QRHandler {
	return &QRHandler{books: books, qr: qrUC}
}

// Encode devuelve el PNG del QR del libro.
// GET /api/books/:id/qr
func (h *QRHandler) Encode(c *fiber.Ctx) error {
	book, err := h.books.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	image, err := h.qr.EncodeBook(*book)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(image)
}

// DecodeResponse resultado de escanear una etiqueta: el payload leído y,
// si el libro sigue existiendo, su estado actual.
type DecodeResponse struct {
	Payload *dto.QRPayload    `json:"payload"`
	Book    *dto.BookResponse `json:"book"`
}

// Decode lee el QR de una imagen subida y resuelve el libro.
// POST /api/qr/decode (multipart, campo "image")
func (h *QRHandler) Decode(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_IMAGE", Message: "se requiere el campo multipart 'image'",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_IMAGE", Message: "no se pudo leer la imagen",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_IMAGE", Message: "no se pudo leer la imagen",
		})
	}

	payload, err := h.qr.DecodeImage(data)
	if err != nil {
		return respondError(c, err)
	}

	// El libro pudo haber sido borrado después de imprimir la etiqueta;
	// el payload se devuelve igual.
	resp := DecodeResponse{Payload: payload}
	if book, err := h.books.GetByID(c.Context(), payload.ID); err == nil {
		resp.Book = book
	}
	return c.JSON(resp)
}
