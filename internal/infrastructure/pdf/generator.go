// Package pdf implementa los reportes imprimibles con Maroto v2.
//
// Layout del reporte de inventario (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Tomo | Año | Fecha de Ingreso | Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de filas                                         │
//	└─────────────────────────────────────────────────────────────┘
//
// La etiqueta de libro es una página pequeña con el QR y los datos
// de identificación del tomo.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.PDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// InventoryReport genera el PDF del inventario completo de libros.
func (g *MarotoGenerator) InventoryReport(books []dto.BookResponse, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(reportConfig("Inventario de Libros"))

	m.AddRows(titleRow("Inventario de Libros", generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow(
		cell{"ID", 3, align.Left},
		cell{"Tomo", 3, align.Left},
		cell{"Año", 1, align.Center},
		cell{"Fecha de Ingreso", 3, align.Center},
		cell{"Estado", 2, align.Center},
	))
	for _, b := range books {
		m.AddRows(dataRow(
			cell{b.ID, 3, align.Left},
			cell{b.Tomo, 3, align.Left},
			cell{fmt.Sprintf("%d", b.Year), 1, align.Center},
			cell{b.EntryDate, 3, align.Center},
			cell{b.Status, 2, align.Center},
		))
	}

	m.AddRows(footerRow(fmt.Sprintf("Total: %d libros", len(books))))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

// HistoryReport genera el PDF del historial de movimientos filtrado.
func (g *MarotoGenerator) HistoryReport(entries []dto.HistoryEntryResponse, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(reportConfig("Historial de Movimientos"))

	m.AddRows(titleRow("Historial de Movimientos", generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow(
		cell{"Fecha y Hora", 2, align.Left},
		cell{"Libro", 2, align.Left},
		cell{"Usuario", 2, align.Left},
		cell{"Acción", 1, align.Center},
		cell{"Transición", 2, align.Center},
		cell{"Observaciones", 3, align.Left},
	))
	for _, e := range entries {
		m.AddRows(dataRow(
			cell{e.DateTime, 2, align.Left},
			cell{e.Book, 2, align.Left},
			cell{e.User, 2, align.Left},
			cell{e.Action, 1, align.Center},
			cell{transitionLabel(e.PreviousState, e.NewState), 2, align.Center},
			cell{deref(e.Observations), 3, align.Left},
		))
	}

	m.AddRows(footerRow(fmt.Sprintf("Total: %d movimientos", len(entries))))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar historial: %w", err)
	}
	return doc.GetBytes(), nil
}

// BookLabel genera la etiqueta imprimible con el QR del libro.
func (g *MarotoGenerator) BookLabel(payload dto.QRPayload, payloadJSON string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta "+payload.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(40).Add(
		col.New(12).Add(code.NewQr(payloadJSON, props.Rect{
			Percent: 95,
			Center:  true,
		})),
	))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(payload.ID, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	)))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s — Año %d", payload.Tomo, payload.Year), props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func reportConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
}

// titleRow: título del reporte (izq) y fecha de generación (der).
func titleRow(title string, generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

type cell struct {
	Text  string
	Size  int
	Align align.Type
}

func headerRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.Size).Add(text.New(c.Text, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.Align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func dataRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.Size).Add(text.New(c.Text, props.Text{
			Size: 8, Align: c.Align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func footerRow(label string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorGray, Top: 4,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func transitionLabel(prev *string, next string) string {
	if prev == nil {
		return next
	}
	return *prev + " > " + next
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
