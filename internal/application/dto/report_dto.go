package dto

import "github.com/shopspring/decimal"

// MonthlyMovement fila del pivote mensual de movimientos. Los meses sin
// actividad no aparecen (el gráfico muestra huecos, no ceros).
type MonthlyMovement struct {
	Month        string `json:"month"` // YYYY-MM
	Retiros      int    `json:"Retiros"`
	Devoluciones int    `json:"Devoluciones"`
	Creados      int    `json:"Creados"`
	Archivados   int    `json:"Archivados"`
}

// StatusDistribution un estado del enum con su conteo. Siempre se devuelven
// los tres estados, con cero si no hay libros en alguno.
type StatusDistribution struct {
	Name       string          `json:"name"`
	Value      int             `json:"value"`
	Percentage decimal.Decimal `json:"percentage"` // % del total, 2 decimales
}
