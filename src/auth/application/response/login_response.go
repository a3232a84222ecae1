package response

import (
	"pos/src/auth/domain/entity"
)

// LoginResponse devuelve el token de sesión junto con los datos del vendedor
type LoginResponse struct {
	Token   string      `json:"token"`
	User    entity.User `json:"user"`
	Message string      `json:"message"`
}
