package request

// UpdateQuantityRequest aplica un delta a la cantidad de una línea del
// carrito; un delta negativo que deja la cantidad en cero o menos elimina
// la línea
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}
