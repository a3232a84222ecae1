package request

// LoginRequest son las credenciales del vendedor
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
