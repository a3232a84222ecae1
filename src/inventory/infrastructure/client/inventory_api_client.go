package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	checkoutEntity "pos/src/checkout/domain/entity"
	"pos/src/inventory/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// inventoryListResponse es la respuesta de get_inventory.php
type inventoryListResponse struct {
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Inventory []entity.Product `json:"inventory"`
}

// mutationResponse es la respuesta de los endpoints de escritura del API remoto
type mutationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InventoryAPIClient cliente HTTP del inventario del API de negocio remoto.
// Las lecturas usan un cliente con reintentos (GET idempotente); las
// escrituras van con una sola llamada porque el API no expone claves de
// idempotencia.
type InventoryAPIClient struct {
	getClient  *http.Client
	postClient *http.Client
	baseURL    string
}

// NewInventoryAPIClient crea una nueva instancia del cliente de inventario
func NewInventoryAPIClient(baseURL string, timeout time.Duration) *InventoryAPIClient {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.Logger = nil
	retry.HTTPClient.Timeout = timeout

	return &InventoryAPIClient{
		getClient:  retry.StandardClient(),
		postClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// ListProducts obtiene el inventario completo del API remoto
func (c *InventoryAPIClient) ListProducts(ctx context.Context) ([]entity.Product, error) {
	url := fmt.Sprintf("%s/get_inventory.php", c.baseURL)

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

	var result inventoryListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling inventory response")
	}
	if result.Status != "success" {
		return nil, &remote.RejectedError{Message: result.Message}
	}

	return result.Inventory, nil
}

// FetchCatalog implementa el puerto InventorySource del checkout: proyecta
// el inventario remoto como catálogo de productos vendibles
func (c *InventoryAPIClient) FetchCatalog(ctx context.Context) ([]checkoutEntity.CatalogItem, error) {
	products, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]checkoutEntity.CatalogItem, 0, len(products))
	for _, p := range products {
		catalog = append(catalog, checkoutEntity.CatalogItem{
			ID:            p.ID,
			Nombre:        p.Nombre,
			Valor:         p.Valor,
			PorcentajeIVA: p.PorcentajeIVA,
			Stock:         p.Stock,
		})
	}
	return catalog, nil
}

// CreateProduct da de alta un producto en el inventario remoto
func (c *InventoryAPIClient) CreateProduct(ctx context.Context, product *entity.Product) (string, error) {
	return c.mutate(ctx, "add_product.php", product)
}

// UpdateProduct actualiza un producto existente del inventario remoto
func (c *InventoryAPIClient) UpdateProduct(ctx context.Context, product *entity.Product) (string, error) {
	return c.mutate(ctx, "update_product.php", product)
}

// DeleteProduct elimina un producto del inventario remoto
func (c *InventoryAPIClient) DeleteProduct(ctx context.Context, productID string) (string, error) {
	payload := map[string]string{"ID_Inv": productID}
	return c.mutate(ctx, "delete_product.php", payload)
}

// mutate envía una escritura al endpoint indicado y retorna el mensaje del API
func (c *InventoryAPIClient) mutate(ctx context.Context, endpoint string, payload interface{}) (string, error) {
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
