package entity

import (
	"github.com/shopspring/decimal"
)

// Cart mantiene la secuencia ordenada de líneas de una sesión de checkout.
// Invariante: a lo sumo una línea por ID de producto; agregar un producto
// que ya está en el carrito incrementa su cantidad.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddItem agrega un producto al carrito. Si ya existe una línea para el
// producto incrementa su cantidad en 1; si no, agrega una línea nueva al
// final con cantidad 1 y el precio vigente del catálogo.
func (c *Cart) AddItem(item CatalogItem) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			c.Lines[i].Cantidad++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID:        item.ID,
		Nombre:        item.Nombre,
		ValorUnitario: item.Valor,
		Cantidad:      1,
	})
}

// UpdateQuantity aplica un delta a la cantidad de una línea. Si la cantidad
// resultante es menor o igual a cero la línea se elimina del carrito
// (política remove-on-zero). Un ID que no está en el carrito es un no-op.
func (c *Cart) UpdateQuantity(itemID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		if c.Lines[i].Cantidad+delta <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Cantidad += delta
		return
	}
}

// RemoveItem elimina la línea del producto indicado; no-op si no existe.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total suma ValorUnitario * Cantidad sobre todas las líneas usando los
// precios capturados al agregar. Función pura del estado actual; retorna
// cero para un carrito vacío.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsEmpty indica si el carrito no tiene líneas
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear vacía el carrito
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalItems retorna la suma de cantidades de todas las líneas
func (c *Cart) TotalItems() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Cantidad
	}
	return count
}
