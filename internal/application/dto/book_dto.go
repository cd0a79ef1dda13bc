package dto

// BookResponse representación de un libro en la API.
// entryDate viaja como fecha calendario YYYY-MM-DD, sin hora.
type BookResponse struct {
	ID        string `json:"id"`
	Tomo      string `json:"tomo"`
	Year      int    `json:"year"`
	EntryDate string `json:"entryDate"`
	Status    string `json:"status"`
}

// AddBookRequest alta de un libro. Status vacío equivale a "Disponible";
// EntryDate vacío equivale a la fecha actual.
type AddBookRequest struct {
	ID        string `json:"id"`
	Tomo      string `json:"tomo"`
	Year      int    `json:"year"`
	EntryDate string `json:"entryDate"`
	Status    string `json:"status"`
}

// UpdateBookRequest edición de un libro; genera un movimiento de Edición.
type UpdateBookRequest struct {
	Tomo         string `json:"tomo"`
	Year         int    `json:"year"`
	EntryDate    string `json:"entryDate"`
	Observations string `json:"observations"`
}
