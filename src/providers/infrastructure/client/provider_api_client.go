package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pos/src/providers/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// providerListResponse es la respuesta de get_providers.php
type providerListResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Providers []entity.Provider `json:"providers"`
}

// mutationResponse es la respuesta de los endpoints de escritura
type mutationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProviderAPIClient cliente HTTP de proveedores del API de negocio remoto
type ProviderAPIClient struct {
	getClient  *http.Client
	postClient *http.Client
	baseURL    string
}

// NewProviderAPIClient crea una nueva instancia del cliente de proveedores
func NewProviderAPIClient(baseURL string, timeout time.Duration) *ProviderAPIClient {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.Logger = nil
	retry.HTTPClient.Timeout = timeout

	return &ProviderAPIClient{
		getClient:  retry.StandardClient(),
		postClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// ListProviders obtiene todos los proveedores del API remoto
func (c *ProviderAPIClient) ListProviders(ctx context.Context) ([]entity.Provider, error) {
	url := fmt.Sprintf("%s/get_providers.php", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating request")
	}

	resp, err := c.getClient.Do(req)
	if err != nil {
		return nil, &remote.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &remote.ConnectionError{Err: err}
	}

	var result providerListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling providers response")
	}
	if result.Status != "success" {
		return nil, &remote.RejectedError{Message: result.Message}
	}

	return result.Providers, nil
}

// CreateProvider da de alta un proveedor en el API remoto
func (c *ProviderAPIClient) CreateProvider(ctx context.Context, provider *entity.Provider) (string, error) {
	return c.mutate(ctx, "add_provider.php", provider)
}

// UpdateProvider actualiza un proveedor existente
func (c *ProviderAPIClient) UpdateProvider(ctx context.Context, provider *entity.Provider) (string, error) {
	return c.mutate(ctx, "update_provider.php", provider)
}

// DeleteProvider elimina un proveedor por su NIT
func (c *ProviderAPIClient) DeleteProvider(ctx context.Context, nit string) (string, error) {
	payload := map[string]string{"NIT": nit}
	return c.mutate(ctx, "delete_provider.php", payload)
}

// mutate envía una escritura al endpoint indicado y retorna el mensaje del API
func (c *ProviderAPIClient) mutate(ctx context.Context, endpoint string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "error marshalling payload")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "error creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.postClient.Do(req)
	if err != nil {
		return "", &remote.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &remote.ConnectionError{Err: err}
	}

	var result mutationResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", errors.Wrapf(err, "unexpected response from %s", endpoint)
	}
	if result.Status != "success" {
		return "", &remote.RejectedError{Message: result.Message}
	}

	return result.Message, nil
}
