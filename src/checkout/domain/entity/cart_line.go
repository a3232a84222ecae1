package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine representa un producto dentro del carrito con su cantidad.
// Nombre y ValorUnitario son una copia del catálogo al momento de agregar:
// un cambio de precio en el inventario remoto durante la sesión no altera
// las líneas que ya están en el carrito.
type CartLine struct {
	ItemID        string          `json:"item_id"`
	Nombre        string          `json:"nombre"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Cantidad      int             `json:"cantidad"`
}

// Subtotal retorna ValorUnitario * Cantidad
func (l CartLine) Subtotal() decimal.Decimal {
	return l.ValorUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}
