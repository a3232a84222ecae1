package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/entity"
	"pos/src/checkout/domain/port"
	"pos/src/checkout/infrastructure/cache"

	"github.com/google/uuid"
)

// AddItemUseCase agrega un producto del catálogo al carrito de una sesión.
// Si el producto ya está en el carrito incrementa su cantidad; el precio se
// captura del catálogo una sola vez, al agregar. Operación puramente local,
// no toca la red.
type AddItemUseCase struct {
	sessionRepo port.SessionRepository
	catalog     *cache.CatalogCache
}

// NewAddItemUseCase crea una nueva instancia del caso de uso
func NewAddItemUseCase(sessionRepo port.SessionRepository, catalog *cache.CatalogCache) *AddItemUseCase {
	return &AddItemUseCase{
		sessionRepo: sessionRepo,
		catalog:     catalog,
	}
}

// Execute resuelve el producto contra el catálogo y lo agrega al carrito
func (uc *AddItemUseCase) Execute(ctx context.Context, sessionID uuid.UUID, itemID string) (*response.CartResponse, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, ok := uc.catalog.Get(itemID)
	if !ok {
		return nil, entity.ErrItemNotInCatalog
	}

	session.AddItem(item)
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
