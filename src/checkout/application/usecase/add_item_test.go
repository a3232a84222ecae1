package usecase

import (
	"context"
	"sync"
	"testing"

	"pos/src/checkout/domain/entity"
	"pos/src/checkout/infrastructure/persistence"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemResolvesPriceFromCatalog(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	uc := NewAddItemUseCase(repo, testCatalog(t))
	session := seedSession(t, repo)

	resp, err := uc.Execute(context.Background(), session.ID, "1")
	require.NoError(t, err)
	resp, err = uc.Execute(context.Background(), session.ID, "1")
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Cantidad)
	assert.True(t, resp.Lines[0].ValorUnitario.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(2000)))
}

func TestAddItemUnknownProduct(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	uc := NewAddItemUseCase(repo, testCatalog(t))
	session := seedSession(t, repo)

	_, err := uc.Execute(context.Background(), session.ID, "99")

	assert.ErrorIs(t, err, entity.ErrItemNotInCatalog)
	assert.True(t, session.Cart.IsEmpty())
}

func TestAddItemConcurrentRequestsOnSameSession(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	uc := NewAddItemUseCase(repo, testCatalog(t))
	session := seedSession(t, repo)

	// Doble click y requests cruzadas sobre la misma sesión: todas las
	// sumas deben llegar al carrito, sin líneas duplicadas
	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), session.ID, "1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snap := session.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, workers, snap.TotalItems)
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	addUC := NewAddItemUseCase(repo, testCatalog(t))
	updateUC := NewUpdateQuantityUseCase(repo)
	session := seedSession(t, repo)

	_, err := addUC.Execute(context.Background(), session.ID, "1")
	require.NoError(t, err)

	resp, err := updateUC.Execute(context.Background(), session.ID, "1", -1)
	require.NoError(t, err)

	assert.Empty(t, resp.Lines)
	assert.True(t, resp.Total.IsZero())
}
