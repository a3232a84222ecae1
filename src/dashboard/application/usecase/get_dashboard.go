package usecase

import (
	"context"

	"pos/src/dashboard/application/response"
	"pos/src/dashboard/infrastructure/client"
)

// GetDashboardUseCase obtiene los indicadores del negocio del API remoto
type GetDashboardUseCase struct {
	dashboardClient *client.DashboardAPIClient
}

// NewGetDashboardUseCase crea una nueva instancia del caso de uso
func NewGetDashboardUseCase(dashboardClient *client.DashboardAPIClient) *GetDashboardUseCase {
	return &GetDashboardUseCase{dashboardClient: dashboardClient}
}

// Execute obtiene los indicadores, opcionalmente filtrados por día o mes
func (uc *GetDashboardUseCase) Execute(ctx context.Context, date, month string) (*response.DashboardData, error) {
	return uc.dashboardClient.FetchDashboard(ctx, date, month)
}
