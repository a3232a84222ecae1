package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// RemoveItemUseCase elimina una línea completa del carrito sin importar su
// cantidad; si el producto no está en el carrito es un no-op
type RemoveItemUseCase struct {
	sessionRepo port.SessionRepository
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(sessionRepo port.SessionRepository) *RemoveItemUseCase {
	return &RemoveItemUseCase{sessionRepo: sessionRepo}
}

// Execute elimina la línea indicada del carrito
func (uc *RemoveItemUseCase) Execute(ctx context.Context, sessionID uuid.UUID, itemID string) (*response.CartResponse, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.RemoveItem(itemID)
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
