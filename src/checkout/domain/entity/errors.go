package entity

import "errors"

var (
	ErrEmptyCart            = errors.New("cart must have at least one item")
	ErrIncompleteCustomer   = errors.New("customer name and document are required for a named invoice")
	ErrSaleInProgress       = errors.New("a sale submission is already in progress")
	ErrItemNotInCatalog     = errors.New("item not found in catalog")
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrInvalidPaymentMethod = errors.New("payment method is not supported")
	ErrSellerNITRequired    = errors.New("seller nit is required")
)

// SaleRejectedError indica que el API de facturación respondió con un estado
// de error; Message conserva el mensaje del endpoint tal cual llegó para
// mostrarlo al usuario.
type SaleRejectedError struct {
	Message string
}

func (e *SaleRejectedError) Error() string {
	return e.Message
}

// ConnectionError indica que la llamada al API remoto no pudo completarse
// (fallo de red o transporte); no hay mensaje estructurado del servidor.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "could not reach the remote billing service"
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
