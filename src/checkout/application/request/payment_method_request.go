package request

// PaymentMethodRequest cambia el medio de pago de la venta
type PaymentMethodRequest struct {
	MedioPago string `json:"medio_pago" binding:"required"`
}
