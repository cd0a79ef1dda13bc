// Package excel genera los archivos XLSX de exportación con excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/export"
)

var _ export.WorkbookBuilder = (*WorkbookBuilder)(nil)

// WorkbookBuilder implementación del puerto de hojas de cálculo.
type WorkbookBuilder struct{}

// NewWorkbookBuilder construye el generador.
func NewWorkbookBuilder() *WorkbookBuilder {
	return &WorkbookBuilder{}
}

// BooksWorkbook inventario de libros, una fila por libro.
func (w *WorkbookBuilder) BooksWorkbook(books []dto.BookResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Inventario"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"ID", "Tomo", "Año", "Fecha de Ingreso", "Estado"}
	if err := writeHeader(f, sheetName, headers); err != nil {
		return nil, err
	}

	for i, b := range books {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}
		f.SetCellValue(sheetName, cell(1), b.ID)
		f.SetCellValue(sheetName, cell(2), b.Tomo)
		f.SetCellValue(sheetName, cell(3), b.Year)
		f.SetCellValue(sheetName, cell(4), b.EntryDate)
		f.SetCellValue(sheetName, cell(5), b.Status)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir workbook de libros: %w", err)
	}
	return buf.Bytes(), nil
}

// HistoryWorkbook historial de movimientos, una fila por movimiento.
func (w *WorkbookBuilder) HistoryWorkbook(entries []dto.HistoryEntryResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Historial"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Fecha y Hora", "Libro", "Usuario", "Estado Anterior", "Estado Nuevo", "Acción", "Persona", "Observaciones"}
	if err := writeHeader(f, sheetName, headers); err != nil {
		return nil, err
	}

	for i, e := range entries {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}
		f.SetCellValue(sheetName, cell(1), e.DateTime)
		f.SetCellValue(sheetName, cell(2), e.Book)
		f.SetCellValue(sheetName, cell(3), e.User)
		f.SetCellValue(sheetName, cell(4), deref(e.PreviousState))
		f.SetCellValue(sheetName, cell(5), e.NewState)
		f.SetCellValue(sheetName, cell(6), e.Action)
		f.SetCellValue(sheetName, cell(7), deref(e.Person))
		f.SetCellValue(sheetName, cell(8), deref(e.Observations))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir workbook de historial: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheetName string, headers []string) error {
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("crear estilo de encabezado: %w", err)
	}
	f.SetCellStyle(sheetName, "A1", lastCell, style)
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
