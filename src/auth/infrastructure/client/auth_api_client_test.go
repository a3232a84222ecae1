package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/src/auth/application/request"
	"pos/src/auth/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClientLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login.php", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ana@mail.com", payload["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "success",
			"message": "Bienvenida",
			"user":    map[string]string{"nombre": "Ana", "nit": "900123456", "email": "ana@mail.com"},
		})
	}))
	defer server.Close()

	client := NewAuthAPIClient(server.URL, 5*time.Second)
	user, err := client.Login(context.Background(), "ana@mail.com", "secreto")

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Nombre)
	assert.Equal(t, "900123456", user.NIT)
}

func TestAuthClientLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "Credenciales incorrectas"})
	}))
	defer server.Close()

	client := NewAuthAPIClient(server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "ana@mail.com", "mala")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAuthClientRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register.php", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ana", payload["nombre_usuario"])
		assert.Equal(t, "123", payload["cc"])

		json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Usuario creado"})
	}))
	defer server.Close()

	client := NewAuthAPIClient(server.URL, 5*time.Second)
	message, err := client.Register(context.Background(), &request.RegisterRequest{
		NombreUsuario: "Ana",
		CC:            "123",
		Email:         "ana@mail.com",
		Password:      "secreto",
	})

	require.NoError(t, err)
	assert.Equal(t, "Usuario creado", message)
}

func TestAuthClientRegisterRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "El correo ya existe"})
	}))
	defer server.Close()

	client := NewAuthAPIClient(server.URL, 5*time.Second)
	_, err := client.Register(context.Background(), &request.RegisterRequest{
		NombreUsuario: "Ana",
		CC:            "123",
		Email:         "ana@mail.com",
		Password:      "secreto",
	})

	var rejected *remote.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "El correo ya existe", rejected.Message)
}

func TestAuthClientConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewAuthAPIClient(server.URL, 1*time.Second)
	_, err := client.Login(context.Background(), "ana@mail.com", "secreto")

	var connection *remote.ConnectionError
	assert.ErrorAs(t, err, &connection)
}
