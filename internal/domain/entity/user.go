package entity

import "time"

// Roles válidos para User (coinciden con el enum user_role de la DB).
const (
	RoleAdministrador = "Administrador"
	RoleEstandar      = "Usuario estándar"
)

// DeletedUserLabel se muestra en el historial cuando el usuario del
// movimiento fue eliminado (user_id colgante).
const DeletedUserLabel = "Usuario Eliminado"

// User representa un operador humano del sistema.
type User struct {
	ID        string // user_<unixmilli>, generado al crear
	Name      string
	Username  string // único
	Email     string // único
	Role      string
	CreatedAt time.Time // inmutable
}

// IsValidRole verifica que el rol pertenezca al enum.
func IsValidRole(r string) bool {
	return r == RoleAdministrador || r == RoleEstandar
}
