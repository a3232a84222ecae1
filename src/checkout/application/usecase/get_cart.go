package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// GetCartUseCase retorna el estado actual del carrito de una sesión
type GetCartUseCase struct {
	sessionRepo port.SessionRepository
}

// NewGetCartUseCase crea una nueva instancia del caso de uso
func NewGetCartUseCase(sessionRepo port.SessionRepository) *GetCartUseCase {
	return &GetCartUseCase{sessionRepo: sessionRepo}
}

// Execute busca la sesión y arma la respuesta del carrito
func (uc *GetCartUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*response.CartResponse, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
