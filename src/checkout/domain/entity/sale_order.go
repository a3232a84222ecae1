package entity

import (
	"github.com/shopspring/decimal"
)

// Valores fijos que el API de facturación espera para ventas POS
const (
	FormaPagoContado = "Contado"
	TipoVenta        = "Venta"
)

// SaleOrderItem es una línea de la venta en el formato del API remoto
type SaleOrderItem struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Cantidad      int             `json:"cantidad"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// SaleOrder es la representación de una venta finalizada tal como se envía
// al API de facturación. Es un snapshot de solo escritura: se arma desde el
// estado del carrito al momento de finalizar y no se vuelve a tocar.
type SaleOrder struct {
	MedioPago string          `json:"Medio_Pago"`
	FormaPago string          `json:"Forma_Pago"`
	Total     decimal.Decimal `json:"Total"`
	NIT       string          `json:"NIT"`
	Items     []SaleOrderItem `json:"Items"`
	Tipo      string          `json:"Tipo"`
	Cliente   Customer        `json:"Cliente"`
}
