package request

// CustomerRequest marca la venta como factura con nombre y carga los datos
// del cliente. Con FacturaConNombre en false el cliente se ignora y la
// venta vuelve al consumidor genérico.
type CustomerRequest struct {
	FacturaConNombre bool            `json:"factura_con_nombre"`
	Cliente          CustomerPayload `json:"cliente"`
}

// CustomerPayload son los datos del cliente de una factura con nombre
type CustomerPayload struct {
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Correo    string `json:"correo"`
}
