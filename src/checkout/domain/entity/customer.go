package entity

// Customer contiene los datos del cliente para una factura con nombre.
// El valor cero representa al consumidor genérico: el API remoto atribuye
// la venta a su cliente anónimo cuando todos los campos van vacíos.
type Customer struct {
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Correo    string `json:"correo"`
}

// IsComplete indica si el cliente tiene los campos obligatorios de una
// factura con nombre (correo es opcional)
func (c Customer) IsComplete() bool {
	return c.Nombre != "" && c.Documento != ""
}

// GenericCustomer retorna el cliente genérico usado en ventas sin nombre
func GenericCustomer() Customer {
	return Customer{}
}
