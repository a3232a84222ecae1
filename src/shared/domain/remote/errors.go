package remote

// RejectedError indica que el API de negocio remoto respondió con estado de
// error; Message conserva su mensaje textual para mostrarlo al usuario
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// ConnectionError indica que la llamada al API remoto no pudo completarse
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "could not reach the remote business API"
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
