package types

import "errors"

// Domain validation errors shared across packages.
var (
	ErrMissingFirstName     = errors.New("customer first name is required")
	ErrMissingLastName      = errors.New("customer last name is required")
	ErrMissingPhone         = errors.New("customer phone is required")
	ErrInvalidServiceMethod = errors.New("service method must be Delivery or Carryout")
	ErrInvalidPaymentType   = errors.New("payment type must be cash or credit")
	ErrInvalidQuantity      = errors.New("item quantity must be >= 1")
)
