package middleware

import (
	"net/http"
	"strings"

	"pos/src/shared/infrastructure/token"

	"github.com/gin-gonic/gin"
)

const (
	sellerNITKey    = "seller_nit"
	sellerNombreKey = "seller_nombre"
)

// RequireSeller exige un token de sesión válido en el header Authorization
// (formato "Bearer <token>") y deja la identidad del vendedor en el
// contexto para los controladores
func RequireSeller(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(sellerNITKey, claims.NIT)
		c.Set(sellerNombreKey, claims.Nombre)
		c.Next()
	}
}

// SellerNIT retorna el NIT del vendedor autenticado, o vacío si no hay
func SellerNIT(c *gin.Context) string {
	return c.GetString(sellerNITKey)
}

// SellerNombre retorna el nombre del vendedor autenticado
func SellerNombre(c *gin.Context) string {
	return c.GetString(sellerNombreKey)
}
