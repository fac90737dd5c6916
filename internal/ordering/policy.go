package ordering

import (
	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// methodRule declares the service-method-dependent requirements in one
// place instead of scattering checks across call sites.
type methodRule struct {
	// addressAtCreation: the order cannot be created without a customer
	// address (there is nowhere to deliver otherwise).
	addressAtCreation bool
	// tipAllowed: a gratuity is honored at placement. Pickup orders have
	// no delivery tip; the amount is silently dropped.
	tipAllowed bool
}

var methodRules = map[types.ServiceMethod]methodRule{
	types.ServiceDelivery: {addressAtCreation: true, tipAllowed: true},
	types.ServiceCarryout: {addressAtCreation: false, tipAllowed: false},
}

// paymentRule declares the payment-type-dependent requirements, evaluated
// at placement, where the payment type first becomes known.
type paymentRule struct {
	wireType string
	// cardFields: number, expiration, and security code are all mandatory.
	cardFields bool
	// billingPostal: carryout orders need a billing postal code for
	// address verification, supplied either on the payment or on the
	// customer address.
	billingPostal bool
}

var paymentRules = map[types.PaymentType]paymentRule{
	types.PaymentCash:   {wireType: "Cash"},
	types.PaymentCredit: {wireType: "CreditCard", cardFields: true, billingPostal: true},
}

// checkCreation enforces the creation-time preconditions for a new order.
func checkCreation(method types.ServiceMethod, customer types.Customer) error {
	if !method.Valid() {
		return types.ErrInvalidServiceMethod
	}
	if err := customer.Validate(); err != nil {
		return err
	}
	if methodRules[method].addressAtCreation && !hasAddress(customer) {
		return ErrAddressRequired
	}
	return nil
}

func hasAddress(customer types.Customer) bool {
	return customer.Address != nil && customer.Address.Street != ""
}

// buildPayment turns caller-supplied payment fields into the single payment
// instruction attached to the placement call. All failures here are local;
// no remote call has been made yet.
func buildPayment(order *types.Order, pay types.Payment) (commerce.PaymentLine, error) {
	rule, ok := paymentRules[pay.Type]
	if !ok {
		return commerce.PaymentLine{}, types.ErrInvalidPaymentType
	}

	if rule.cardFields {
		if pay.CardNumber == "" || pay.Expiration == "" || pay.SecurityCode == "" {
			return commerce.PaymentLine{}, ErrMissingCardFields
		}
	}

	postal := pay.PostalCode
	if postal == "" && order.Customer.Address != nil {
		postal = order.Customer.Address.PostalCode
	}
	if rule.billingPostal && order.Method == types.ServiceCarryout && postal == "" {
		return commerce.PaymentLine{}, ErrBillingPostalRequired
	}

	line := commerce.PaymentLine{
		Type:         rule.wireType,
		Amount:       order.Pricing.Total,
		Number:       pay.CardNumber,
		Expiration:   pay.Expiration,
		SecurityCode: pay.SecurityCode,
		PostalCode:   postal,
	}
	if methodRules[order.Method].tipAllowed {
		line.TipAmount = pay.TipAmount
	}
	return line, nil
}

// orderPayload maps the aggregate onto the provider's order envelope.
func orderPayload(order *types.Order) *commerce.OrderPayload {
	payload := &commerce.OrderPayload{
		StoreID:       order.StoreID,
		ServiceMethod: string(order.Method),
		FirstName:     order.Customer.FirstName,
		LastName:      order.Customer.LastName,
		Email:         order.Customer.Email,
		Phone:         order.Customer.Phone,
		Products:      make([]commerce.ProductLine, len(order.Items)),
	}
	if order.Customer.Address != nil {
		payload.Address = &commerce.AddressPayload{
			Street:     order.Customer.Address.Street,
			City:       order.Customer.Address.City,
			Region:     order.Customer.Address.Region,
			PostalCode: order.Customer.Address.PostalCode,
		}
	}
	for i, item := range order.Items {
		payload.Products[i] = commerce.ProductLine{
			Code:    item.Code,
			Qty:     item.Quantity,
			Options: item.Options,
		}
	}
	return payload
}
