package export

import (
	"time"

	"github.com/jhoicas/registro-libros/internal/application/dto"
)

// WorkbookBuilder genera los libros de cálculo (XLSX) de los exports.
type WorkbookBuilder interface {
	BooksWorkbook(books []dto.BookResponse) ([]byte, error)
	HistoryWorkbook(entries []dto.HistoryEntryResponse) ([]byte, error)
}

// PDFGenerator genera los reportes PDF y la etiqueta QR imprimible.
type PDFGenerator interface {
	InventoryReport(books []dto.BookResponse, generatedAt time.Time) ([]byte, error)
	HistoryReport(entries []dto.HistoryEntryResponse, generatedAt time.Time) ([]byte, error)
	BookLabel(payload dto.QRPayload, payloadJSON string) ([]byte, error)
}
