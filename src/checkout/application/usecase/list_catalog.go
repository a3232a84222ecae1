package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/infrastructure/cache"
)

// ListCatalogUseCase lista el catálogo de productos vendibles para la grilla
// del POS. Sirve desde el cache; si el cache está vacío (por ejemplo, el API
// remoto no respondió al arrancar) intenta recargarlo primero.
type ListCatalogUseCase struct {
	catalog *cache.CatalogCache
}

// NewListCatalogUseCase crea una nueva instancia del caso de uso
func NewListCatalogUseCase(catalog *cache.CatalogCache) *ListCatalogUseCase {
	return &ListCatalogUseCase{catalog: catalog}
}

// Execute retorna el catálogo, opcionalmente filtrado por nombre
func (uc *ListCatalogUseCase) Execute(ctx context.Context, search string) (*response.CatalogResponse, error) {
	if uc.catalog.Len() == 0 {
		if err := uc.catalog.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return response.NewCatalogResponse(uc.catalog.List(search)), nil
}
