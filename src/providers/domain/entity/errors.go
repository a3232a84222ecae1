package entity

import "errors"

var (
	ErrProviderNITRequired  = errors.New("provider nit is required")
	ErrProviderNameRequired = errors.New("provider name is required")
)
