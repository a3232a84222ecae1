package response

import (
	"github.com/shopspring/decimal"
)

// FinalizeResponse es la confirmación de una venta registrada con éxito.
// Message conserva el texto del API de facturación tal cual llegó.
type FinalizeResponse struct {
	Message    string          `json:"message"`
	Total      decimal.Decimal `json:"total"`
	TotalItems int             `json:"total_items"`
	MedioPago  string          `json:"medio_pago"`
}
