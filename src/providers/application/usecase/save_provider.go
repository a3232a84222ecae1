package usecase

import (
	"context"

	"pos/src/providers/application/request"
	"pos/src/providers/domain/entity"
	"pos/src/providers/infrastructure/client"
)

// SaveProviderUseCase da de alta o actualiza un proveedor contra el API
// remoto. Con isNew en true es un alta; si no, una actualización.
type SaveProviderUseCase struct {
	providerClient *client.ProviderAPIClient
}

// NewSaveProviderUseCase crea una nueva instancia del caso de uso
func NewSaveProviderUseCase(providerClient *client.ProviderAPIClient) *SaveProviderUseCase {
	return &SaveProviderUseCase{providerClient: providerClient}
}

// Execute valida el proveedor y lo envía al API remoto
func (uc *SaveProviderUseCase) Execute(ctx context.Context, isNew bool, req *request.SaveProviderRequest) (string, error) {
	provider, err := entity.NewProvider(req.NIT, req.Nombre, req.Correo, req.Celular, req.TipoProducto)
	if err != nil {
		return "", err
	}

	if isNew {
		return uc.providerClient.CreateProvider(ctx, provider)
	}
	return uc.providerClient.UpdateProvider(ctx, provider)
}
