package usecase

import (
	"context"

	"pos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// DiscardSessionUseCase descarta una sesión de checkout y todo su estado.
// Equivale a abandonar la vista POS: el carrito no se persiste en ningún
// lado, simplemente deja de existir.
type DiscardSessionUseCase struct {
	sessionRepo port.SessionRepository
}

// NewDiscardSessionUseCase crea una nueva instancia del caso de uso
func NewDiscardSessionUseCase(sessionRepo port.SessionRepository) *DiscardSessionUseCase {
	return &DiscardSessionUseCase{sessionRepo: sessionRepo}
}

// Execute elimina la sesión del repositorio
func (uc *DiscardSessionUseCase) Execute(ctx context.Context, sessionID uuid.UUID) error {
	return uc.sessionRepo.Delete(ctx, sessionID)
}
