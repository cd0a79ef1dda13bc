package entity

import "time"

// Estados válidos para Book (coinciden con el enum book_status de la DB).
const (
	StatusDisponible = "Disponible"
	StatusEnUso      = "En Uso"
	StatusArchivado  = "Archivado"
)

// Book representa un libro físico del registro civil (tomo de actas).
// El ID lo asigna un humano, ej. "1995-NAC-0001" o "REG-12345".
type Book struct {
	ID        string
	Tomo      string    // etiqueta libre del tomo, no es FK
	Year      int       // año registral asociado
	EntryDate time.Time // fecha calendario de ingreso a la colección (sin hora)
	Status    string    // Disponible, En Uso, Archivado
}

// AllStatuses enumera los tres estados en el orden de presentación.
func AllStatuses() []string {
	return []string{StatusDisponible, StatusEnUso, StatusArchivado}
}

// IsValidStatus verifica que el estado pertenezca al enum.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDisponible, StatusEnUso, StatusArchivado:
		return true
	}
	return false
}
