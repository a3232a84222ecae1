package usecase

import (
	"context"
	"strings"

	"pos/src/providers/domain/entity"
	"pos/src/providers/infrastructure/client"
)

// ListProvidersUseCase lista los proveedores del API remoto; la búsqueda
// opcional matchea contra nombre, NIT, correo y tipo de producto, como la
// barra de búsqueda de la vista
type ListProvidersUseCase struct {
	providerClient *client.ProviderAPIClient
}

// NewListProvidersUseCase crea una nueva instancia del caso de uso
func NewListProvidersUseCase(providerClient *client.ProviderAPIClient) *ListProvidersUseCase {
	return &ListProvidersUseCase{providerClient: providerClient}
}

// Execute obtiene los proveedores y aplica la búsqueda
func (uc *ListProvidersUseCase) Execute(ctx context.Context, search string) ([]entity.Provider, error) {
	providers, err := uc.providerClient.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return providers, nil
	}

	search = strings.ToLower(search)
	filtered := make([]entity.Provider, 0, len(providers))
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.Nombre), search) ||
			strings.Contains(strings.ToLower(p.NIT), search) ||
			strings.Contains(strings.ToLower(p.Correo), search) ||
			strings.Contains(strings.ToLower(p.TipoProducto), search) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
