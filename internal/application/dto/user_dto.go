package dto

// UserResponse representación de un usuario en la API.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"` // YYYY-MM-DD
}

// AddUserRequest alta de un usuario; el id se genera en el servidor.
type AddUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
