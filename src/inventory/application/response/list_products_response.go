package response

import (
	"pos/src/inventory/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductResponse es un producto del inventario con su precio base calculado
type ProductResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Costo         decimal.Decimal `json:"costo"`
	Valor         decimal.Decimal `json:"valor"`
	ValorSinIVA   decimal.Decimal `json:"valor_sin_iva"`
	PorcentajeIVA decimal.Decimal `json:"porcentaje_iva"`
	Stock         int             `json:"stock"`
}

// ListProductsResponse es el listado de inventario para la vista
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
}

// NewListProductsResponse proyecta los productos del API remoto
func NewListProductsResponse(products []entity.Product) *ListProductsResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ProductResponse{
			ID:            p.ID,
			Nombre:        p.Nombre,
			Descripcion:   p.Descripcion,
			Costo:         p.Costo,
			Valor:         p.Valor,
			ValorSinIVA:   p.ValorSinIVA(),
			PorcentajeIVA: p.PorcentajeIVA,
			Stock:         p.Stock,
		})
	}
	return &ListProductsResponse{
		Products:   items,
		TotalCount: len(items),
	}
}
