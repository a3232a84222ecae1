package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pos/src/shared/domain/remote"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventoryPayload = `{
	"status": "success",
	"message": "ok",
	"inventory": [
		{"ID_Inv": "1", "Nombre_Inv": "Pan", "Descripcion": "Pan integral", "Costo": 600, "Valor": 1000, "Porcentaje_IVA": 19, "Stock": 10},
		{"ID_Inv": "2", "Nombre_Inv": "Leche", "Descripcion": "", "Costo": 1800, "Valor": 2500, "Porcentaje_IVA": 5, "Stock": 4}
	]
}`

func TestInventoryClientListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get_inventory.php", r.URL.Path)
		w.Write([]byte(inventoryPayload))
	}))
	defer server.Close()

	client := NewInventoryAPIClient(server.URL, 5*time.Second)
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pan", products[0].Nombre)
	assert.Equal(t, 4, products[1].Stock)
}

func TestInventoryClientListProductsRetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(inventoryPayload))
	}))
	defer server.Close()

	client := NewInventoryAPIClient(server.URL, 5*time.Second)
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestInventoryClientFetchCatalogProjection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(inventoryPayload))
	}))
	defer server.Close()

	client := NewInventoryAPIClient(server.URL, 5*time.Second)
	catalog, err := client.FetchCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "1", catalog[0].ID)
	assert.Equal(t, "Pan", catalog[0].Nombre)
	assert.True(t, catalog[0].Valor.Equal(decimal.NewFromInt(1000)))
}

func TestInventoryClientDeleteProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/delete_product.php", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "7", payload["ID_Inv"])

		json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Producto eliminado"})
	}))
	defer server.Close()

	client := NewInventoryAPIClient(server.URL, 5*time.Second)
	message, err := client.DeleteProduct(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "Producto eliminado", message)
}

func TestInventoryClientRejectedMutation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "El producto ya existe"})
	}))
	defer server.Close()

	client := NewInventoryAPIClient(server.URL, 5*time.Second)
	_, err := client.DeleteProduct(context.Background(), "7")

	var rejected *remote.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "El producto ya existe", rejected.Message)
}

func TestInventoryClientConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewInventoryAPIClient(server.URL, 1*time.Second)
	_, err := client.DeleteProduct(context.Background(), "7")

	var connection *remote.ConnectionError
	assert.ErrorAs(t, err, &connection)
}
