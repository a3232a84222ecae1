package port

import (
	"context"
	"pos/src/checkout/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository define el contrato para guardar sesiones de checkout.
// Las sesiones son estado transitorio: viven solo mientras dura el checkout
// y se descartan al finalizar la venta o abandonar la vista POS.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.CheckoutSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
