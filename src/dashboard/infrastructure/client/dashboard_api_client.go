package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"pos/src/dashboard/application/response"
	"pos/src/shared/domain/remote"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// dashboardResponse es la respuesta de get_dashboard_data.php
type dashboardResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Data    *response.DashboardData `json:"data"`
}

// DashboardAPIClient cliente HTTP de los indicadores del negocio. Solo
// lecturas, con reintentos (GET idempotente).
type DashboardAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewDashboardAPIClient crea una nueva instancia del cliente del tablero
func NewDashboardAPIClient(baseURL string, timeout time.Duration) *DashboardAPIClient {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.Logger = nil
	retry.HTTPClient.Timeout = timeout

	return &DashboardAPIClient{
		httpClient: retry.StandardClient(),
		baseURL:    baseURL,
	}
}

// FetchDashboard obtiene los indicadores del API remoto. date filtra un día
// concreto (YYYY-MM-DD) y month un mes (YYYY-MM); ambos son opcionales.
func (c *DashboardAPIClient) FetchDashboard(ctx context.Context, date, month string) (*response.DashboardData, error) {
	endpoint := fmt.Sprintf("%s/get_dashboard_data.php", c.baseURL)

	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	if month != "" {
		query.Set("month", month)
	}
	if encoded := query.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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

	var result dashboardResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling dashboard response")
	}
	if result.Status != "success" {
		return nil, &remote.RejectedError{Message: result.Message}
	}
	if result.Data == nil {
		return &response.DashboardData{
			DailySales:  []response.DailySale{},
			TopProducts: []response.TopProduct{},
		}, nil
	}

	return result.Data, nil
}
