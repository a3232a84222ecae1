package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pos/src/invoices/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// invoiceListResponse es la respuesta de get_invoices.php
type invoiceListResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Invoices []entity.Invoice `json:"invoices"`
}

// InvoiceAPIClient cliente HTTP del historial de facturas del API remoto.
// Solo lecturas, con reintentos (GET idempotente).
type InvoiceAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewInvoiceAPIClient crea una nueva instancia del cliente de facturas
func NewInvoiceAPIClient(baseURL string, timeout time.Duration) *InvoiceAPIClient {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.Logger = nil
	retry.HTTPClient.Timeout = timeout

	return &InvoiceAPIClient{
		httpClient: retry.StandardClient(),
		baseURL:    baseURL,
	}
}

// ListInvoices obtiene el historial completo de facturas del API remoto
func (c *InvoiceAPIClient) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	url := fmt.Sprintf("%s/get_invoices.php", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &remote.ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &remote.ConnectionError{Err: err}
	}

	var result invoiceListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling invoices response")
	}
	if result.Status != "success" {
		return nil, &remote.RejectedError{Message: result.Message}
	}

	return result.Invoices, nil
}
