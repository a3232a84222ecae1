package request

import (
	"github.com/shopspring/decimal"
)

// SaveProductRequest da de alta o actualiza un producto del inventario.
// Los nombres de campos siguen el contrato del API remoto.
type SaveProductRequest struct {
	Nombre        string          `json:"Nombre_Inv" binding:"required"`
	Descripcion   string          `json:"Descripcion"`
	Costo         decimal.Decimal `json:"Costo"`
	Valor         decimal.Decimal `json:"Valor" binding:"required"`
	PorcentajeIVA decimal.Decimal `json:"Porcentaje_IVA"`
	Stock         int             `json:"Stock"`
}
