package port

import (
	"context"
	"pos/src/checkout/domain/entity"
)

// SaleSubmitter define el contrato de envío de una venta al API de
// facturación. Una sola llamada, sin reintentos: el endpoint no es
// idempotente y numera las facturas del lado servidor.
//
// Retorna el mensaje de confirmación del endpoint, o un error tipado:
// *entity.SaleRejectedError cuando el API respondió con estado de error y
// *entity.ConnectionError cuando la llamada no pudo completarse.
type SaleSubmitter interface {
	Submit(ctx context.Context, order entity.SaleOrder) (string, error)
}
