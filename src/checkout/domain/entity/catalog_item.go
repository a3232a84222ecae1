package entity

import (
	"github.com/shopspring/decimal"
)

// CatalogItem representa un producto vendible tal como lo publica el
// inventario remoto. Es inmutable durante la sesión de checkout: el precio
// que viaja al carrito es el vigente al momento de agregar el producto.
type CatalogItem struct {
	ID            string          `json:"ID_Inv"`
	Nombre        string          `json:"Nombre_Inv"`
	Valor         decimal.Decimal `json:"Valor"`          // Precio de venta con IVA incluido
	PorcentajeIVA decimal.Decimal `json:"Porcentaje_IVA"` // Porcentaje de IVA aplicado al Valor
	Stock         int             `json:"Stock"`          // Informativo: el API remoto es la autoridad sobre el stock
}

// ValorSinIVA calcula el precio base del producto: Valor / (1 + IVA/100)
func (ci CatalogItem) ValorSinIVA() decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(ci.PorcentajeIVA.Div(decimal.NewFromInt(100)))
	if divisor.IsZero() {
		return ci.Valor
	}
	return ci.Valor.Div(divisor)
}
