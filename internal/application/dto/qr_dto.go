package dto

// QRPayload es la forma canónica del contenido de un código QR de libro:
// el subconjunto de campos de identidad {id, year, tomo}, serializado como
// JSON compacto. Es la única forma que admite esta API.
type QRPayload struct {
	ID   string `json:"id"`
	Year int    `json:"year"`
	Tomo string `json:"tomo"`
}
