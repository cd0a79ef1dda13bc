package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/export"
	"github.com/jhoicas/registro-libros/internal/application/qr"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler maneja las descargas de inventario, historial y etiquetas.
type ExportHandler struct {
	books   *usecase.BookUseCase
	history *usecase.HistoryUseCase
	export  *export.UseCase
	qr      *qr.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(books *usecase.BookUseCase, history *usecase.HistoryUseCase, exportUC *export.UseCase, qrUC *qr.UseCase) *ExportHandler {
	return &ExportHandler{books: books, history: history, export: exportUC, qr: qrUC}
}

// BooksXLSX descarga el inventario como hoja de cálculo.
// GET /api/export/books.xlsx
func (h *ExportHandler) BooksXLSX(c *fiber.Ctx) error {
	books, err := h.books.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	name, content, err := h.export.BooksXLSX(books)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, name, contentTypeXLSX, content)
}

// BooksPDF descarga el inventario como reporte PDF.
// GET /api/export/books.pdf
func (h *ExportHandler) BooksPDF(c *fiber.Ctx) error {
	books, err := h.books.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	name, content, err := h.export.BooksPDF(books)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, name, contentTypePDF, content)
}

// HistoryXLSX descarga el historial filtrado como hoja de cálculo.
// Acepta los mismos filtros que GET /api/history.
// GET /api/export/history.xlsx
func (h *ExportHandler) HistoryXLSX(c *fiber.Ctx) error {
	entries, err := h.queryHistory(c)
	if err != nil {
		return respondError(c, err)
	}
	name, content, err := h.export.HistoryXLSX(entries)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, name, contentTypeXLSX, content)
}

// HistoryPDF descarga el historial filtrado como reporte PDF.
// GET /api/export/history.pdf
func (h *ExportHandler) HistoryPDF(c *fiber.Ctx) error {
	entries, err := h.queryHistory(c)
	if err != nil {
		return respondError(c, err)
	}
	name, content, err := h.export.HistoryPDF(entries)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, name, contentTypePDF, content)
}

// BookLabel descarga la etiqueta QR imprimible del libro.
// GET /api/books/:id/label
func (h *ExportHandler) BookLabel(c *fiber.Ctx) error {
	book, err := h.books.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	payload := dto.QRPayload{ID: book.ID, Year: book.Year, Tomo: book.Tomo}
	payloadJSON, err := h.qr.PayloadJSON(*book)
	if err != nil {
		return respondError(c, err)
	}
	name, content, err := h.export.BookLabelPDF(payload, payloadJSON)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, name, contentTypePDF, content)
}

func (h *ExportHandler) queryHistory(c *fiber.Ctx) ([]dto.HistoryEntryResponse, error) {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, errBadQuery
	}
	return h.history.Query(c.Context(), q)
}

func sendFile(c *fiber.Ctx, name, contentType string, content []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(content)
}
