package entity

// Provider representa un proveedor tal como lo maneja el API remoto
type Provider struct {
	NIT          string `json:"NIT"`
	Nombre       string `json:"Nombre_Pro"`
	Correo       string `json:"Correo"`
	Celular      string `json:"Celular"`
	TipoProducto string `json:"Tipo_Producto"`
}

// NewProvider valida y arma un proveedor para enviar al API remoto
func NewProvider(nit, nombre, correo, celular, tipoProducto string) (*Provider, error) {
	if nit == "" {
		return nil, ErrProviderNITRequired
	}
	if nombre == "" {
		return nil, ErrProviderNameRequired
	}

	return &Provider{
		NIT:          nit,
		Nombre:       nombre,
		Correo:       correo,
		Celular:      celular,
		TipoProducto: tipoProducto,
	}, nil
}
