package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/registro-libros/internal/application/dto"
)

var generatedAt = time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

// assertPDF los documentos generados empiezan con la firma %PDF.
func assertPDF(t *testing.T, out []byte) {
	t.Helper()
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el contenido no es un PDF")
}

func TestInventoryReport_GeneraPDF(t *testing.T) {
	g := NewMarotoGenerator()
	books := []dto.BookResponse{
		{ID: "1995-NAC-0001", Tomo: "Nacimientos", Year: 1995, EntryDate: "1995-03-10", Status: "Disponible"},
		{ID: "2001-MAT-0002", Tomo: "Matrimonios", Year: 2001, EntryDate: "2001-07-22", Status: "Archivado"},
	}

	out, err := g.InventoryReport(books, generatedAt)
	require.NoError(t, err)
	assertPDF(t, out)
}

func TestInventoryReport_InventarioVacio(t *testing.T) {
	g := NewMarotoGenerator()

	out, err := g.InventoryReport(nil, generatedAt)
	require.NoError(t, err)
	assertPDF(t, out)
}

func TestHistoryReport_GeneraPDF(t *testing.T) {
	g := NewMarotoGenerator()
	prev := "Disponible"
	obs := "Retirado para trámite de certificación."
	entries := []dto.HistoryEntryResponse{
		{
			DateTime:      "2024-05-02 09:15:00",
			Book:          "1995-NAC-0001",
			User:          "Luis Pérez",
			PreviousState: &prev,
			NewState:      "En Uso",
			Action:        "Retiro",
			Observations:  &obs,
		},
		{
			DateTime: "1995-03-10 08:00:00",
			Book:     "1995-NAC-0001",
			User:     "Usuario Eliminado",
			NewState: "Disponible",
			Action:   "Creación",
		},
	}

	out, err := g.HistoryReport(entries, generatedAt)
	require.NoError(t, err)
	assertPDF(t, out)
}

func TestBookLabel_GeneraPDF(t *testing.T) {
	g := NewMarotoGenerator()
	payload := dto.QRPayload{ID: "1995-NAC-0001", Year: 1995, Tomo: "Nacimientos"}

	out, err := g.BookLabel(payload, `{"id":"1995-NAC-0001","year":1995,"tomo":"Nacimientos"}`)
	require.NoError(t, err)
	assertPDF(t, out)
}

func TestTransitionLabel(t *testing.T) {
	prev := "Disponible"
	assert.Equal(t, "Disponible > En Uso", transitionLabel(&prev, "En Uso"))
	assert.Equal(t, "Disponible", transitionLabel(nil, "Disponible"))
}
