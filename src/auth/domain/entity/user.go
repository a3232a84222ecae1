package entity

// User es el vendedor autenticado, tal como lo entrega login.php
type User struct {
	Nombre string `json:"nombre"`
	NIT    string `json:"nit"`
	Email  string `json:"email"`
}
