package entity

import "time"

// Acciones válidas para Movement (coinciden con el enum movement_action de la DB).
const (
	ActionRetiro     = "Retiro"
	ActionArchivado  = "Archivado"
	ActionDevolucion = "Devolución"
	ActionCreacion   = "Creación"
	ActionEdicion    = "Edición"
)

// Movement es un registro inmutable de auditoría: una transición de estado
// (o la creación) aplicada a un Book. Nunca se actualiza ni se borra
// directamente; solo desaparece en cascada al borrar su Book.
type Movement struct {
	ID            int64
	DateTime      time.Time
	BookID        string
	UserID        *string // nullable: el usuario puede borrarse después
	PreviousState *string // nil solo para la Creación
	NewState      string
	Action        string
	Person        *string // persona externa nombrada en retiros
	Observations  *string
}

// IsValidAction verifica que la acción pertenezca al enum.
func IsValidAction(a string) bool {
	switch a {
	case ActionRetiro, ActionArchivado, ActionDevolucion, ActionCreacion, ActionEdicion:
		return true
	}
	return false
}

// ResultingStatus devuelve el estado del libro después de aplicar la acción
// sobre su estado actual, o false si la transición no es legal.
//
// Reglas:
//   - Retiro:      Disponible -> En Uso
//   - Devolución:  En Uso     -> Disponible
//   - Archivado:   Disponible -> Archivado
//   - Edición:     cualquier estado, sin cambio de estado
//
// Creación no aparece aquí: solo ocurre al insertar el libro (estado previo nil).
func ResultingStatus(current, action string) (string, bool) {
	switch action {
	case ActionRetiro:
		if current == StatusDisponible {
			return StatusEnUso, true
		}
	case ActionDevolucion:
		if current == StatusEnUso {
			return StatusDisponible, true
		}
	case ActionArchivado:
		if current == StatusDisponible {
			return StatusArchivado, true
		}
	case ActionEdicion:
		if IsValidStatus(current) {
			return current, true
		}
	}
	return "", false
}
