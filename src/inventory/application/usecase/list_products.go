package usecase

import (
	"context"
	"strings"

	"pos/src/inventory/application/response"
	"pos/src/inventory/domain/entity"
	"pos/src/inventory/infrastructure/client"
)

// ListProductsUseCase lista el inventario remoto, con búsqueda opcional por
// nombre para la barra de búsqueda de la vista
type ListProductsUseCase struct {
	inventoryClient *client.InventoryAPIClient
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(inventoryClient *client.InventoryAPIClient) *ListProductsUseCase {
	return &ListProductsUseCase{inventoryClient: inventoryClient}
}

// Execute obtiene el inventario y aplica la búsqueda por nombre
func (uc *ListProductsUseCase) Execute(ctx context.Context, search string) (*response.ListProductsResponse, error) {
	products, err := uc.inventoryClient.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		search = strings.ToLower(search)
		filtered := make([]entity.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Nombre), search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return response.NewListProductsResponse(products), nil
}
