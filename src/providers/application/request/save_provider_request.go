package request

// SaveProviderRequest da de alta o actualiza un proveedor. Los nombres de
// campos siguen el contrato del API remoto.
type SaveProviderRequest struct {
	NIT          string `json:"NIT"`
	Nombre       string `json:"Nombre_Pro" binding:"required"`
	Correo       string `json:"Correo"`
	Celular      string `json:"Celular"`
	TipoProducto string `json:"Tipo_Producto"`
}
