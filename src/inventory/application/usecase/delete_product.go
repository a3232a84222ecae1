package usecase

import (
	"context"

	"pos/src/inventory/domain/entity"
	"pos/src/inventory/infrastructure/client"
)

// DeleteProductUseCase elimina un producto del inventario remoto
type DeleteProductUseCase struct {
	inventoryClient *client.InventoryAPIClient
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(inventoryClient *client.InventoryAPIClient) *DeleteProductUseCase {
	return &DeleteProductUseCase{inventoryClient: inventoryClient}
}

// Execute elimina el producto indicado; retorna el mensaje del API
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID string) (string, error) {
	if productID == "" {
		return "", entity.ErrProductIDRequired
	}
	return uc.inventoryClient.DeleteProduct(ctx, productID)
}
