package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/entity"
	"pos/src/checkout/domain/port"
)

// CreateSessionUseCase abre una sesión de checkout vacía para un vendedor.
// Equivale a entrar a la vista POS: carrito vacío, Efectivo por defecto.
type CreateSessionUseCase struct {
	sessionRepo port.SessionRepository
}

// NewCreateSessionUseCase crea una nueva instancia del caso de uso
func NewCreateSessionUseCase(sessionRepo port.SessionRepository) *CreateSessionUseCase {
	return &CreateSessionUseCase{sessionRepo: sessionRepo}
}

// Execute crea y guarda la sesión nueva
func (uc *CreateSessionUseCase) Execute(ctx context.Context, sellerNIT string) (*response.CartResponse, error) {
	session, err := entity.NewCheckoutSession(sellerNIT)
	if err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
