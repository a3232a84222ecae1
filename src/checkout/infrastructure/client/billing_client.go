package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pos/src/checkout/domain/entity"
)

// invoiceAPIResponse es la respuesta del endpoint de facturación remoto
type invoiceAPIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BillingClient cliente HTTP del endpoint de facturación del API remoto.
// Implementa port.SaleSubmitter con una sola llamada sin reintentos: el
// endpoint no es idempotente (numera la factura y descuenta stock), así que
// un reintento automático podría duplicar la venta.
type BillingClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewBillingClient crea una nueva instancia del cliente de facturación
func NewBillingClient(baseURL string, timeout time.Duration) *BillingClient {
	return &BillingClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// Submit envía la venta a create_invoice.php. Retorna el mensaje del
// endpoint en éxito, *entity.SaleRejectedError con el mensaje textual si el
// API respondió con estado de error, y *entity.ConnectionError si la
// llamada no pudo completarse.
func (c *BillingClient) Submit(ctx context.Context, order entity.SaleOrder) (string, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("error marshalling sale order: %w", err)
	}

	url := fmt.Sprintf("%s/create_invoice.php", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &entity.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &entity.ConnectionError{Err: err}
	}

	var result invoiceAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &entity.ConnectionError{Err: fmt.Errorf("unexpected billing response: %w", err)}
	}

	if result.Status != "success" {
		return "", &entity.SaleRejectedError{Message: result.Message}
	}

	return result.Message, nil
}
