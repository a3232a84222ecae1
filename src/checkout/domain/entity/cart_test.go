package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogItem(id, nombre string, valor int64) CatalogItem {
	return CatalogItem{
		ID:     id,
		Nombre: nombre,
		Valor:  decimal.NewFromInt(valor),
		Stock:  10,
	}
}

func TestCartAddItemMergesExistingLine(t *testing.T) {
	cart := Cart{}
	pan := catalogItem("1", "Pan", 1000)

	cart.AddItem(pan)
	cart.AddItem(pan)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Cantidad)
	assert.Equal(t, "Pan", cart.Lines[0].Nombre)
}

func TestCartAddItemKeepsInsertionOrder(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))
	cart.AddItem(catalogItem("2", "Leche", 2500))
	cart.AddItem(catalogItem("1", "Pan", 1000))

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "1", cart.Lines[0].ItemID)
	assert.Equal(t, "2", cart.Lines[1].ItemID)
}

func TestCartTotal(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))
	cart.AddItem(catalogItem("1", "Pan", 1000))
	cart.AddItem(catalogItem("2", "Leche", 2500))

	// 1000*2 + 2500*1
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(4500)))
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartTotalIsIdempotent(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))

	first := cart.Total()
	second := cart.Total()

	assert.True(t, first.Equal(second))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Cantidad)
}

func TestCartTotalEmpty(t *testing.T) {
	cart := Cart{}
	assert.True(t, cart.Total().IsZero())
	assert.True(t, cart.IsEmpty())
}

func TestCartUpdateQuantityRemovesLineAtZero(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))

	cart.UpdateQuantity("1", -1)

	assert.True(t, cart.IsEmpty())
}

func TestCartUpdateQuantityAppliesDelta(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))

	cart.UpdateQuantity("1", 4)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Cantidad)

	cart.UpdateQuantity("1", -3)
	assert.Equal(t, 2, cart.Lines[0].Cantidad)
}

func TestCartUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))

	cart.UpdateQuantity("99", 1)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Cantidad)
}

func TestCartRemoveItem(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))
	cart.AddItem(catalogItem("2", "Leche", 2500))

	cart.RemoveItem("1")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "2", cart.Lines[0].ItemID)

	// Remover un ID inexistente no hace nada
	cart.RemoveItem("99")
	assert.Len(t, cart.Lines, 1)
}

func TestCartPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	cart := Cart{}
	cart.AddItem(catalogItem("1", "Pan", 1000))

	// El precio quedó capturado al agregar: si el catálogo cambia y el mismo
	// producto vuelve a agregarse, la línea conserva el precio original
	cart.AddItem(catalogItem("1", "Pan", 9999))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Cantidad)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(2000)))
}
