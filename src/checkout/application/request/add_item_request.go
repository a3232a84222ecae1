package request

// AddItemRequest pide agregar un producto del catálogo al carrito
type AddItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}
