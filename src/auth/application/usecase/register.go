package usecase

import (
	"context"

	"pos/src/auth/application/request"
	"pos/src/auth/infrastructure/client"
)

// RegisterUseCase da de alta un vendedor en el API remoto
type RegisterUseCase struct {
	authClient *client.AuthAPIClient
}

// NewRegisterUseCase crea una nueva instancia del caso de uso
func NewRegisterUseCase(authClient *client.AuthAPIClient) *RegisterUseCase {
	return &RegisterUseCase{authClient: authClient}
}

// Execute registra al vendedor; retorna el mensaje del API
func (uc *RegisterUseCase) Execute(ctx context.Context, req *request.RegisterRequest) (string, error) {
	return uc.authClient.Register(ctx, req)
}
