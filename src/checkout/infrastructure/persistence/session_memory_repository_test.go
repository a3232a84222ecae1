package persistence

import (
	"context"
	"testing"

	"pos/src/checkout/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositorySaveAndFind(t *testing.T) {
	repo := NewSessionMemoryRepository()
	ctx := context.Background()

	session, err := entity.NewCheckoutSession("900123456")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, session))

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Same(t, session, found)
	assert.Equal(t, 1, repo.Len())
}

func TestSessionRepositoryFindUnknown(t *testing.T) {
	repo := NewSessionMemoryRepository()

	session, err := entity.NewCheckoutSession("900123456")
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionMemoryRepository()
	ctx := context.Background()

	session, err := entity.NewCheckoutSession("900123456")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, session))

	require.NoError(t, repo.Delete(ctx, session.ID))
	assert.Equal(t, 0, repo.Len())

	// Borrar dos veces no es un error
	assert.NoError(t, repo.Delete(ctx, session.ID))
}
