package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("sale price must be greater than 0")
	ErrInvalidCost         = errors.New("cost must be greater than or equal to 0")
	ErrInvalidTaxRate      = errors.New("tax rate must be greater than or equal to 0")
	ErrInvalidStock        = errors.New("stock must be greater than or equal to 0")
	ErrProductIDRequired   = errors.New("product id is required")
)
