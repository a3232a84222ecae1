package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pos/src/auth/application/request"
	"pos/src/auth/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/pkg/errors"
)

// loginResponse es la respuesta de login.php
type loginResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	User    entity.User `json:"user"`
}

// registerResponse es la respuesta de register.php
type registerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AuthAPIClient cliente HTTP de autenticación contra el API remoto. Son
// escrituras, así que van sin reintentos.
type AuthAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewAuthAPIClient crea una nueva instancia del cliente de autenticación
func NewAuthAPIClient(baseURL string, timeout time.Duration) *AuthAPIClient {
	return &AuthAPIClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Login valida las credenciales contra el API remoto y retorna el vendedor
func (c *AuthAPIClient) Login(ctx context.Context, email, password string) (*entity.User, error) {
	payload := map[string]string{"email": email, "password": password}

	body, status, _, err := c.post(ctx, "login.php", payload)
	if err != nil {
		return nil, err
	}
	if status != "success" {
		return nil, entity.ErrInvalidCredentials
	}

	var result loginResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling login response")
	}
	return &result.User, nil
}

// Register da de alta un vendedor en el API remoto; retorna el mensaje del API
func (c *AuthAPIClient) Register(ctx context.Context, req *request.RegisterRequest) (string, error) {
	_, status, message, err := c.post(ctx, "register.php", req)
	if err != nil {
		return "", err
	}
	if status != "success" {
		return "", &remote.RejectedError{Message: message}
	}
	return message, nil
}

// post envía el payload al endpoint indicado y retorna el cuerpo crudo junto
// con el status y message del sobre de respuesta
func (c *AuthAPIClient) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, string, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", "", errors.Wrap(err, "error marshalling payload")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", "", errors.Wrap(err, "error creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", "", &remote.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", "", &remote.ConnectionError{Err: err}
	}

	var envelope registerResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, "", "", errors.Wrapf(err, "unexpected response from %s", endpoint)
	}
	return respBody, envelope.Status, envelope.Message, nil
}
