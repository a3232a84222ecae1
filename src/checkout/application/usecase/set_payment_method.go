package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/entity"
	"pos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// SetPaymentMethodUseCase cambia el medio de pago de la venta en curso
type SetPaymentMethodUseCase struct {
	sessionRepo port.SessionRepository
}

// NewSetPaymentMethodUseCase crea una nueva instancia del caso de uso
func NewSetPaymentMethodUseCase(sessionRepo port.SessionRepository) *SetPaymentMethodUseCase {
	return &SetPaymentMethodUseCase{sessionRepo: sessionRepo}
}

// Execute valida el medio de pago y lo aplica a la sesión
func (uc *SetPaymentMethodUseCase) Execute(ctx context.Context, sessionID uuid.UUID, value string) (*response.CartResponse, error) {
	method, err := entity.ParsePaymentMethod(value)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.SetPaymentMethod(method)
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
