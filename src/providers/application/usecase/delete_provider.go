package usecase

import (
	"context"

	"pos/src/providers/domain/entity"
	"pos/src/providers/infrastructure/client"
)

// DeleteProviderUseCase elimina un proveedor del API remoto por su NIT
type DeleteProviderUseCase struct {
	providerClient *client.ProviderAPIClient
}

// NewDeleteProviderUseCase crea una nueva instancia del caso de uso
func NewDeleteProviderUseCase(providerClient *client.ProviderAPIClient) *DeleteProviderUseCase {
	return &DeleteProviderUseCase{providerClient: providerClient}
}

// Execute elimina el proveedor indicado; retorna el mensaje del API
func (uc *DeleteProviderUseCase) Execute(ctx context.Context, nit string) (string, error) {
	if nit == "" {
		return "", entity.ErrProviderNITRequired
	}
	return uc.providerClient.DeleteProvider(ctx, nit)
}
