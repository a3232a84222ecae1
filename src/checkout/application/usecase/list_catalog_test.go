package usecase

import (
	"context"
	"testing"

	"pos/src/checkout/domain/entity"
	"pos/src/checkout/infrastructure/cache"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCatalogFiltersByName(t *testing.T) {
	uc := NewListCatalogUseCase(testCatalog(t))

	resp, err := uc.Execute(context.Background(), "leche")

	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2", resp.Items[0].ID)
}

func TestListCatalogLazyRefreshOnEmptyCache(t *testing.T) {
	source := &catalogSourceStub{items: []entity.CatalogItem{
		{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)},
	}}
	uc := NewListCatalogUseCase(cache.NewCatalogCache(source))

	resp, err := uc.Execute(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}
