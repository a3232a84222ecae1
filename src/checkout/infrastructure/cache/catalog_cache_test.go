package cache

import (
	"context"
	"testing"

	"pos/src/checkout/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sourceStub entrega el catálogo configurado o falla a demanda
type sourceStub struct {
	items []entity.CatalogItem
	err   error
}

func (s *sourceStub) FetchCatalog(_ context.Context) ([]entity.CatalogItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func TestCatalogCacheRefreshAndGet(t *testing.T) {
	source := &sourceStub{items: []entity.CatalogItem{
		{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)},
		{ID: "2", Nombre: "Leche", Valor: decimal.NewFromInt(2500)},
	}}
	cache := NewCatalogCache(source)

	require.NoError(t, cache.Refresh(context.Background()))
	assert.Equal(t, 2, cache.Len())

	item, ok := cache.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Leche", item.Nombre)

	_, ok = cache.Get("99")
	assert.False(t, ok)
}

func TestCatalogCacheRefreshFailureKeepsContent(t *testing.T) {
	source := &sourceStub{items: []entity.CatalogItem{
		{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)},
	}}
	cache := NewCatalogCache(source)
	require.NoError(t, cache.Refresh(context.Background()))

	source.err = errors.New("remote api down")
	err := cache.Refresh(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("1")
	assert.True(t, ok)
}

func TestCatalogCacheListFiltersByName(t *testing.T) {
	source := &sourceStub{items: []entity.CatalogItem{
		{ID: "1", Nombre: "Pan Integral", Valor: decimal.NewFromInt(1500)},
		{ID: "2", Nombre: "Leche", Valor: decimal.NewFromInt(2500)},
		{ID: "3", Nombre: "Pan Blanco", Valor: decimal.NewFromInt(1200)},
	}}
	cache := NewCatalogCache(source)
	require.NoError(t, cache.Refresh(context.Background()))

	result := cache.List("pan")
	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "3", result[1].ID)

	assert.Len(t, cache.List(""), 3)
	assert.Empty(t, cache.List("queso"))
}

func TestCatalogCacheRefreshSkipsDuplicateIDs(t *testing.T) {
	source := &sourceStub{items: []entity.CatalogItem{
		{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)},
		{ID: "1", Nombre: "Pan duplicado", Valor: decimal.NewFromInt(900)},
	}}
	cache := NewCatalogCache(source)
	require.NoError(t, cache.Refresh(context.Background()))

	assert.Equal(t, 1, cache.Len())
	item, _ := cache.Get("1")
	assert.Equal(t, "Pan", item.Nombre)
}
