package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("session token is invalid or expired")
)

// Claims son los datos del vendedor que viajan dentro del token de sesión
type Claims struct {
	NIT    string `json:"nit"`
	Nombre string `json:"nombre"`
	jwt.RegisteredClaims
}

// Service firma y verifica los tokens de sesión de los vendedores. El login
// real ocurre contra el API remoto; este token solo evita volver a pedirle
// la identidad del vendedor en cada operación del POS.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService crea el servicio de tokens con el secreto y la vigencia dados
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate emite un token firmado para el vendedor
func (s *Service) Generate(nit, nombre string) (string, error) {
	now := time.Now()
	claims := Claims{
		NIT:    nit,
		Nombre: nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify valida la firma y la vigencia del token y retorna sus claims
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
