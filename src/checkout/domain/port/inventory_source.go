package port

import (
	"context"
	"pos/src/checkout/domain/entity"
)

// InventorySource define el contrato de lectura del catálogo de productos.
// Se consulta al iniciar la sesión y se vuelve a consultar después de cada
// venta exitosa, porque el API remoto descuenta el stock del lado servidor.
type InventorySource interface {
	FetchCatalog(ctx context.Context) ([]entity.CatalogItem, error)
}
