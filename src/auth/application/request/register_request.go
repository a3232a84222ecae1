package request

// RegisterRequest da de alta un vendedor. Los nombres de campos siguen el
// contrato de register.php.
type RegisterRequest struct {
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	CC            string `json:"cc" binding:"required"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
}
