package usecase

import (
	"context"

	"pos/src/auth/application/request"
	"pos/src/auth/application/response"
	"pos/src/auth/infrastructure/client"
	"pos/src/shared/infrastructure/token"
)

// LoginUseCase valida las credenciales contra el API remoto y emite el token
// de sesión local del vendedor
type LoginUseCase struct {
	authClient *client.AuthAPIClient
	tokens     *token.Service
}

// NewLoginUseCase crea una nueva instancia del caso de uso
func NewLoginUseCase(authClient *client.AuthAPIClient, tokens *token.Service) *LoginUseCase {
	return &LoginUseCase{
		authClient: authClient,
		tokens:     tokens,
	}
}

// Execute autentica al vendedor y retorna su token de sesión
func (uc *LoginUseCase) Execute(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := uc.authClient.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	sessionToken, err := uc.tokens.Generate(user.NIT, user.Nombre)
	if err != nil {
		return nil, err
	}

	return &response.LoginResponse{
		Token:   sessionToken,
		User:    *user,
		Message: "Login successful",
	}, nil
}
