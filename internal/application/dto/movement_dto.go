package dto

// RegisterMovementRequest registra una transición de estado sobre un libro.
// El userID sale del token; el bookID de la ruta.
type RegisterMovementRequest struct {
	Action       string `json:"action"`       // Retiro, Devolución, Archivado, Edición
	Person       string `json:"person"`       // requerido para Retiro
	Observations string `json:"observations"` // nota libre
}

// HistoryQuery filtros del historial tal como llegan por query string.
type HistoryQuery struct {
	Query    string `query:"query"`
	Action   string `query:"action"`    // "all" o vacío desactiva
	DateFrom string `query:"date_from"` // YYYY-MM-DD, inclusivo
	DateTo   string `query:"date_to"`   // YYYY-MM-DD, inclusivo (fin de día)
}

// HistoryEntryResponse fila del historial para la API.
type HistoryEntryResponse struct {
	DateTime      string  `json:"dateTime"` // YYYY-MM-DD HH:MM:SS
	Book          string  `json:"book"`
	User          string  `json:"user"`
	PreviousState *string `json:"previousState"`
	NewState      string  `json:"newState"`
	Action        string  `json:"action"`
	Person        *string `json:"person"`
	Observations  *string `json:"observations"`
}
