package dto

// LoginRequest acceso por nombre de usuario. El sistema no almacena
// credenciales (la pantalla de acceso es un selector de rol); el token
// solo aporta identidad y rol para atribuir movimientos y proteger las
// rutas de administración.
type LoginRequest struct {
	Username string `json:"username"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
