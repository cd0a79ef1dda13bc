// Package export genera los archivos descargables (XLSX y PDF) a partir
// del conjunto filtrado en memoria, igual que hacía la UI original.
package export

import (
	"fmt"
	"time"

	"github.com/jhoicas/registro-libros/internal/application/dto"
)

// UseCase arma los archivos de exportación. Los nombres de archivo llevan
// la fecha de exportación.
type UseCase struct {
	workbooks WorkbookBuilder
	pdf       PDFGenerator
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(workbooks WorkbookBuilder, pdf PDFGenerator) *UseCase {
	return &UseCase{workbooks: workbooks, pdf: pdf, now: time.Now}
}

// BooksXLSX inventario de libros como hoja de cálculo.
func (uc *UseCase) BooksXLSX(books []dto.BookResponse) (string, []byte, error) {
	content, err := uc.workbooks.BooksWorkbook(books)
	if err != nil {
		return "", nil, fmt.Errorf("generar XLSX de libros: %w", err)
	}
	return uc.filename("inventario_libros", "xlsx"), content, nil
}

// HistoryXLSX historial filtrado como hoja de cálculo.
func (uc *UseCase) HistoryXLSX(entries []dto.HistoryEntryResponse) (string, []byte, error) {
	content, err := uc.workbooks.HistoryWorkbook(entries)
	if err != nil {
		return "", nil, fmt.Errorf("generar XLSX de historial: %w", err)
	}
	return uc.filename("historial_movimientos", "xlsx"), content, nil
}

// BooksPDF inventario de libros como reporte PDF.
func (uc *UseCase) BooksPDF(books []dto.BookResponse) (string, []byte, error) {
	content, err := uc.pdf.InventoryReport(books, uc.now())
	if err != nil {
		return "", nil, fmt.Errorf("generar PDF de libros: %w", err)
	}
	return uc.filename("inventario_libros", "pdf"), content, nil
}

// HistoryPDF historial filtrado como reporte PDF.
func (uc *UseCase) HistoryPDF(entries []dto.HistoryEntryResponse) (string, []byte, error) {
	content, err := uc.pdf.HistoryReport(entries, uc.now())
	if err != nil {
		return "", nil, fmt.Errorf("generar PDF de historial: %w", err)
	}
	return uc.filename("historial_movimientos", "pdf"), content, nil
}

// BookLabelPDF etiqueta QR imprimible de un libro.
func (uc *UseCase) BookLabelPDF(payload dto.QRPayload, payloadJSON string) (string, []byte, error) {
	content, err := uc.pdf.BookLabel(payload, payloadJSON)
	if err != nil {
		return "", nil, fmt.Errorf("generar etiqueta QR: %w", err)
	}
	return fmt.Sprintf("etiqueta_%s.pdf", payload.ID), content, nil
}

func (uc *UseCase) filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, uc.now().Format(dto.DateLayout), ext)
}
