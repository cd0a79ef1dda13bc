package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/infrastructure/excel"
)

func TestBooksWorkbook_EncabezadosYFilas(t *testing.T) {
	builder := excel.NewWorkbookBuilder()

	content, err := builder.BooksWorkbook([]dto.BookResponse{
		{ID: "1995-NAC-0001", Tomo: "Nacimientos", Year: 1995, EntryDate: "1995-03-10", Status: "Disponible"},
		{ID: "2001-MAT-0032", Tomo: "Matrimonios", Year: 2001, EntryDate: "2001-07-22", Status: "Archivado"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado + dos libros")

	assert.Equal(t, []string{"ID", "Tomo", "Año", "Fecha de Ingreso", "Estado"}, rows[0])
	assert.Equal(t, "1995-NAC-0001", rows[1][0])
	assert.Equal(t, "1995", rows[1][2])
	assert.Equal(t, "Archivado", rows[2][4])
}

func TestHistoryWorkbook_CamposOpcionalesVacios(t *testing.T) {
	builder := excel.NewWorkbookBuilder()
	prev := "Disponible"

	content, err := builder.HistoryWorkbook([]dto.HistoryEntryResponse{
		{
			DateTime: "2024-05-03 14:30:15", Book: "1995-NAC-0001", User: "Luis Pérez",
			PreviousState: &prev, NewState: "En Uso", Action: "Retiro",
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Historial")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Person y Observations nulos quedan como celdas vacías, no "nil".
	row := rows[1]
	assert.Equal(t, "Retiro", row[5])
	if len(row) > 6 {
		assert.Empty(t, row[6])
	}
}

func TestBooksWorkbook_InventarioVacio(t *testing.T) {
	builder := excel.NewWorkbookBuilder()

	content, err := builder.BooksWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo el encabezado")
}
