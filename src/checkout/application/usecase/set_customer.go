package usecase

import (
	"context"

	"pos/src/checkout/application/request"
	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/entity"
	"pos/src/checkout/domain/port"

	"github.com/google/uuid"
)

// SetCustomerUseCase activa o desactiva la factura con nombre de la sesión.
// Los datos del cliente se guardan tal como llegan; la validación de campos
// obligatorios ocurre recién al finalizar la venta, para que el usuario
// pueda completar el formulario de a poco.
type SetCustomerUseCase struct {
	sessionRepo port.SessionRepository
}

// NewSetCustomerUseCase crea una nueva instancia del caso de uso
func NewSetCustomerUseCase(sessionRepo port.SessionRepository) *SetCustomerUseCase {
	return &SetCustomerUseCase{sessionRepo: sessionRepo}
}

// Execute aplica el flag y los datos del cliente a la sesión
func (uc *SetCustomerUseCase) Execute(ctx context.Context, sessionID uuid.UUID, req *request.CustomerRequest) (*response.CartResponse, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.SetNamedInvoice(req.FacturaConNombre, entity.Customer{
		Nombre:    req.Cliente.Nombre,
		Documento: req.Cliente.Documento,
		Correo:    req.Cliente.Correo,
	})
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return response.NewCartResponse(session), nil
}
