package response

import (
	"pos/src/checkout/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineResponse es una línea del carrito con su subtotal calculado
type CartLineResponse struct {
	ItemID        string          `json:"item_id"`
	Nombre        string          `json:"nombre"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Cantidad      int             `json:"cantidad"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// CustomerResponse son los datos del cliente de la sesión
type CustomerResponse struct {
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Correo    string `json:"correo"`
}

// CartResponse es el estado completo de la sesión de checkout que consume
// la vista POS: líneas, total y configuración de la venta
type CartResponse struct {
	SessionID        uuid.UUID          `json:"session_id"`
	Lines            []CartLineResponse `json:"lines"`
	Total            decimal.Decimal    `json:"total"`
	TotalItems       int                `json:"total_items"`
	MedioPago        string             `json:"medio_pago"`
	FacturaConNombre bool               `json:"factura_con_nombre"`
	Cliente          CustomerResponse   `json:"cliente"`
	Status           string             `json:"status"`
}

// NewCartResponse arma la respuesta desde una copia consistente de la
// sesión, para no leer el carrito mientras otro handler lo muta
func NewCartResponse(session *entity.CheckoutSession) *CartResponse {
	snap := session.Snapshot()

	lines := make([]CartLineResponse, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		lines = append(lines, CartLineResponse{
			ItemID:        line.ItemID,
			Nombre:        line.Nombre,
			ValorUnitario: line.ValorUnitario,
			Cantidad:      line.Cantidad,
			Subtotal:      line.Subtotal(),
		})
	}
	return &CartResponse{
		SessionID:        snap.ID,
		Lines:            lines,
		Total:            snap.Total,
		TotalItems:       snap.TotalItems,
		MedioPago:        string(snap.MedioPago),
		FacturaConNombre: snap.FacturaConNombre,
		Cliente: CustomerResponse{
			Nombre:    snap.Cliente.Nombre,
			Documento: snap.Cliente.Documento,
			Correo:    snap.Cliente.Correo,
		},
		Status: string(snap.Status),
	}
}
