package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/src/checkout/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() entity.SaleOrder {
	return entity.SaleOrder{
		MedioPago: "Efectivo",
		FormaPago: entity.FormaPagoContado,
		Total:     decimal.NewFromInt(3500),
		NIT:       "900123456",
		Tipo:      entity.TipoVenta,
		Items: []entity.SaleOrderItem{
			{ID: "1", Nombre: "Pan", Cantidad: 2, ValorUnitario: decimal.NewFromInt(1000)},
		},
	}
}

func TestBillingClientSubmitSuccess(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/create_invoice.php", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Factura #42 creada"})
	}))
	defer server.Close()

	client := NewBillingClient(server.URL, 5*time.Second)
	message, err := client.Submit(context.Background(), testOrder())

	require.NoError(t, err)
	assert.Equal(t, "Factura #42 creada", message)
	assert.Equal(t, "Efectivo", received["Medio_Pago"])
	assert.Equal(t, "Contado", received["Forma_Pago"])
	assert.Equal(t, "Venta", received["Tipo"])
}

func TestBillingClientSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "Stock insuficiente para Pan"})
	}))
	defer server.Close()

	client := NewBillingClient(server.URL, 5*time.Second)
	_, err := client.Submit(context.Background(), testOrder())

	var rejected *entity.SaleRejectedError
	require.ErrorAs(t, err, &rejected)
	// El mensaje del endpoint llega textual
	assert.Equal(t, "Stock insuficiente para Pan", rejected.Message)
}

func TestBillingClientSubmitConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewBillingClient(server.URL, 1*time.Second)
	_, err := client.Submit(context.Background(), testOrder())

	var connection *entity.ConnectionError
	assert.ErrorAs(t, err, &connection)
}

func TestBillingClientSubmitMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewBillingClient(server.URL, 5*time.Second)
	_, err := client.Submit(context.Background(), testOrder())

	var connection *entity.ConnectionError
	assert.ErrorAs(t, err, &connection)
}
