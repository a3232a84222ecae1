package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// UpdateQuantityUseCase aplica un delta a la cantidad de una línea del
// carrito. Política remove-on-zero: si la cantidad resultante queda en cero
// o menos, la línea se elimina. Un producto que no está en el carrito es un
// no-op, no un error.
type UpdateQuantityUseCase struct {
	sessionRepo port.SessionRepository
}

// NewUpdateQuantityUseCase crea una nueva instancia del caso de uso
func NewUpdateQuantityUseCase(sessionRepo port.SessionRepository) *UpdateQuantityUseCase {
	return &UpdateQuantityUseCase{sessionRepo: sessionRepo}
}

// Execute aplica el delta sobre la línea indicada
func (uc *UpdateQuantityUseCase) Execute(ctx context.Context, sessionID uuid.UUID, itemID string, delta int) (*response.CartResponse, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.UpdateQuantity(itemID, delta)
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
