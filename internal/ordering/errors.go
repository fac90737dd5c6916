package ordering

import "errors"

// Local precondition failures. These are raised before any remote call and
// never have partial effect.
var (
	ErrAddressRequired       = errors.New("delivery orders require a customer address")
	ErrOrderNotFound         = errors.New("order not found")
	ErrEmptyOrder            = errors.New("order has no items")
	ErrItemCodeRequired      = errors.New("item code is required")
	ErrItemIndexOutOfRange   = errors.New("item index out of range")
	ErrNotPriced             = errors.New("order must be priced before placing")
	ErrMissingCardFields     = errors.New("credit payments require card number, expiration, and security code")
	ErrBillingPostalRequired = errors.New("carryout credit payments require a billing postal code")
	ErrPhoneRequired         = errors.New("phone number is required")
	ErrAddressQueryRequired  = errors.New("address is required")
)
