package entity

import (
	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario tal como lo maneja el API
// remoto. Los nombres JSON siguen el contrato del API (ID_Inv, Nombre_Inv,
// etc.), que es quien posee el inventario; este servicio solo lo proyecta.
type Product struct {
	ID            string          `json:"ID_Inv,omitempty"`
	Nombre        string          `json:"Nombre_Inv"`
	Descripcion   string          `json:"Descripcion"`
	Costo         decimal.Decimal `json:"Costo"`
	Valor         decimal.Decimal `json:"Valor"`          // Precio de venta con IVA incluido
	PorcentajeIVA decimal.Decimal `json:"Porcentaje_IVA"`
	Stock         int             `json:"Stock"`
}

// NewProduct valida y arma un producto para enviar al API remoto
func NewProduct(id, nombre, descripcion string, costo, valor, porcentajeIVA decimal.Decimal, stock int) (*Product, error) {
	if nombre == "" {
		return nil, ErrProductNameRequired
	}
	if valor.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if costo.LessThan(decimal.Zero) {
		return nil, ErrInvalidCost
	}
	if porcentajeIVA.LessThan(decimal.Zero) {
		return nil, ErrInvalidTaxRate
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:            id,
		Nombre:        nombre,
		Descripcion:   descripcion,
		Costo:         costo,
		Valor:         valor,
		PorcentajeIVA: porcentajeIVA,
		Stock:         stock,
	}, nil
}

// ValorSinIVA calcula el precio base del producto: Valor / (1 + IVA/100)
func (p Product) ValorSinIVA() decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(p.PorcentajeIVA.Div(decimal.NewFromInt(100)))
	if divisor.IsZero() {
		return p.Valor
	}
	return p.Valor.Div(divisor)
}
