package entity

import (
	"github.com/shopspring/decimal"
)

// Invoice es una factura ya emitida, tal como la entrega el API remoto.
// Los nombres de campos siguen el contrato del API.
type Invoice struct {
	No        string          `json:"No"`
	Fecha     string          `json:"Fecha"`
	NombreCl  string          `json:"Nombre_Cl"`
	MedioPago string          `json:"Medio_Pago"`
	Total     decimal.Decimal `json:"Total"`
	Item      string          `json:"Item"`
}

// FieldValue expone los campos filtrables de la factura por su nombre de API
func (i Invoice) FieldValue(field string) interface{} {
	switch field {
	case "No":
		return i.No
	case "Fecha":
		return i.Fecha
	case "Nombre_Cl":
		return i.NombreCl
	case "Medio_Pago":
		return i.MedioPago
	case "Total":
		return i.Total
	case "Item":
		return i.Item
	default:
		return nil
	}
}
