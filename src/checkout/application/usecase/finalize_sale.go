package usecase

import (
	"context"

	"pos/src/checkout/application/response"
	"pos/src/checkout/domain/port"
	"pos/src/checkout/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FinalizeSaleUseCase registra la venta de una sesión contra el API de
// facturación remoto.
//
// Flujo:
//  1. Pasar la sesión a SUBMITTING; si ya hay un envío en vuelo se rechaza
//     con ErrSaleInProgress sin tocar la red
//  2. Validar y armar el snapshot de la venta (carrito no vacío, cliente
//     completo si la factura es con nombre); cualquier violación corta acá,
//     antes de la red, y deja el carrito intacto
//  3. Enviar la venta: una sola llamada, sin reintentos; el API remoto
//     numera la factura y descuenta el stock
//  4. Con éxito: limpiar carrito, volver a Efectivo, cliente genérico, y
//     recargar el catálogo porque el stock cambió del lado servidor
//  5. Con rechazo o fallo de conexión: el carrito y toda la configuración
//     quedan exactamente como estaban para corregir y reintentar
type FinalizeSaleUseCase struct {
	sessionRepo port.SessionRepository
	submitter   port.SaleSubmitter
	catalog     *cache.CatalogCache
}

// NewFinalizeSaleUseCase crea una nueva instancia del caso de uso
func NewFinalizeSaleUseCase(
	sessionRepo port.SessionRepository,
	submitter port.SaleSubmitter,
	catalog *cache.CatalogCache,
) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{
		sessionRepo: sessionRepo,
		submitter:   submitter,
		catalog:     catalog,
	}
}

// Execute finaliza la venta de la sesión indicada
func (uc *FinalizeSaleUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*response.FinalizeResponse, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Bloqueo de reentrada: un solo envío en vuelo por sesión
	if err := session.BeginSubmission(); err != nil {
		return nil, err
	}

	// Validaciones locales; fallan antes de cualquier llamada de red
	order, err := session.BuildSaleOrder()
	if err != nil {
		session.EndSubmission()
		return nil, err
	}

	logrus.Infof("🛒 Finalizando venta - Items: %d, Total: %s, Medio: %s", len(order.Items), order.Total, order.MedioPago)

	message, err := uc.submitter.Submit(ctx, order)
	if err != nil {
		// Rechazo del endpoint o fallo de transporte: el estado del
		// checkout se conserva tal cual para corregir y reenviar
		session.EndSubmission()
		logrus.WithError(err).Warn("⚠️  Venta no registrada, el carrito se conserva")
		return nil, err
	}

	// La respuesta se arma desde el snapshot enviado, no desde la sesión:
	// otro handler pudo tocarla mientras la llamada estaba en vuelo
	totalItems := 0
	for _, item := range order.Items {
		totalItems += item.Cantidad
	}
	resp := &response.FinalizeResponse{
		Message:    message,
		Total:      order.Total,
		TotalItems: totalItems,
		MedioPago:  order.MedioPago,
	}

	session.ResetAfterSale()
	// La venta ya quedó registrada del lado remoto; si guardar la sesión
	// reseteada falla no puede convertirse en un error para el cajero
	if saveErr := uc.sessionRepo.Save(ctx, session); saveErr != nil {
		logrus.WithError(saveErr).Warn("⚠️  Could not save reset session after sale")
	}

	// El stock cambió del lado servidor; recarga best-effort del catálogo
	if refreshErr := uc.catalog.Refresh(ctx); refreshErr != nil {
		logrus.WithError(refreshErr).Warn("⚠️  Could not refresh catalog after sale")
	}

	logrus.Infof("✅ Venta registrada: %s", message)
	return resp, nil
}
