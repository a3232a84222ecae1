package usecase

import (
	"context"

	"pos/src/inventory/application/request"
	"pos/src/inventory/domain/entity"
	"pos/src/inventory/infrastructure/client"
)

// SaveProductUseCase da de alta o actualiza un producto contra el API
// remoto. Con productID vacío es un alta; con productID es una
// actualización del producto existente.
type SaveProductUseCase struct {
	inventoryClient *client.InventoryAPIClient
}

// NewSaveProductUseCase crea una nueva instancia del caso de uso
func NewSaveProductUseCase(inventoryClient *client.InventoryAPIClient) *SaveProductUseCase {
	return &SaveProductUseCase{inventoryClient: inventoryClient}
}

// Execute valida el producto y lo envía al API remoto; retorna el mensaje
// de confirmación del API
func (uc *SaveProductUseCase) Execute(ctx context.Context, productID string, req *request.SaveProductRequest) (string, error) {
	product, err := entity.NewProduct(
		productID,
		req.Nombre,
		req.Descripcion,
		req.Costo,
		req.Valor,
		req.PorcentajeIVA,
		req.Stock,
	)
	if err != nil {
		return "", err
	}

	if productID == "" {
		return uc.inventoryClient.CreateProduct(ctx, product)
	}
	return uc.inventoryClient.UpdateProduct(ctx, product)
}
