package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CrearUsuarioRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Rol defaults to "manager" when empty.
	Rol string `json:"role"`
}

// UsuarioResponse never carries the password column.
type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"role"`
}
