package types

// ServiceMethod selects how an order reaches the customer. It governs which
// fields are required (address, tip) and which pricing fields are present.
type ServiceMethod string

const (
	ServiceDelivery ServiceMethod = "Delivery"
	ServiceCarryout ServiceMethod = "Carryout"
)

// Valid reports whether the method is one of the two supported values.
func (m ServiceMethod) Valid() bool {
	return m == ServiceDelivery || m == ServiceCarryout
}

// Address is a street address, used both for delivery destinations and as a
// billing address on card payments.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
}

// Customer identifies who the order is for. FirstName, LastName, and Phone
// are always required; Email is optional; Address is required for delivery
// orders.
type Customer struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// Validate checks the unconditionally required customer fields. The
// service-method-dependent address rule is enforced by the ordering policy,
// not here.
func (c Customer) Validate() error {
	if c.FirstName == "" {
		return ErrMissingFirstName
	}
	if c.LastName == "" {
		return ErrMissingLastName
	}
	if c.Phone == "" {
		return ErrMissingPhone
	}
	return nil
}

// ItemOptions maps a topping/ingredient code to a portion key ("1/1" whole,
// "1/2"/"2/2" halves) to a quantity level ("0" none, "1" normal, "2" double).
// The structure is passed through to the provider without semantic
// validation; the provider owns the customization schema.
type ItemOptions map[string]map[string]string

// Clone returns a deep copy of the options map.
func (o ItemOptions) Clone() ItemOptions {
	if o == nil {
		return nil
	}
	out := make(ItemOptions, len(o))
	for code, portions := range o {
		p := make(map[string]string, len(portions))
		for portion, qty := range portions {
			p[portion] = qty
		}
		out[code] = p
	}
	return out
}

// Item is one order line: a catalog variant code, its customization options,
// and a count of at least 1.
type Item struct {
	Code     string      `json:"code"`
	Options  ItemOptions `json:"options,omitempty"`
	Quantity int         `json:"quantity"`
}

// PricingBreakdown is the normalized result of a successful remote pricing
// call. DeliveryFee is present only for delivery orders (and may be zero).
type PricingBreakdown struct {
	Subtotal    float64  `json:"subtotal"`
	Tax         float64  `json:"tax"`
	DeliveryFee *float64 `json:"deliveryFee,omitempty"`
	Total       float64  `json:"total"`
}

// PlacementConfirmation records a successfully placed order.
type PlacementConfirmation struct {
	ProviderOrderID string `json:"providerOrderId"`
	Status          string `json:"status"`
	Estimate        string `json:"estimate"`
}

// Order is the aggregate for one in-progress purchase. The session store
// exclusively owns all instances; workflow operations receive copies and
// write mutations back through the store.
type Order struct {
	ID        string
	StoreID   string
	Method    ServiceMethod
	Customer  Customer
	Items     []Item
	Pricing   *PricingBreakdown
	Placement *PlacementConfirmation
}

// Clone returns a deep copy of the order so that no caller holds a live
// reference into the session store.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	out := *o
	if o.Customer.Address != nil {
		addr := *o.Customer.Address
		out.Customer.Address = &addr
	}
	out.Items = make([]Item, len(o.Items))
	for i, it := range o.Items {
		out.Items[i] = Item{Code: it.Code, Options: it.Options.Clone(), Quantity: it.Quantity}
	}
	if o.Pricing != nil {
		p := *o.Pricing
		if o.Pricing.DeliveryFee != nil {
			fee := *o.Pricing.DeliveryFee
			p.DeliveryFee = &fee
		}
		out.Pricing = &p
	}
	if o.Placement != nil {
		c := *o.Placement
		out.Placement = &c
	}
	return &out
}

// Priced reports whether the order carries a successful pricing result, the
// precondition for placement.
func (o *Order) Priced() bool {
	return o.Pricing != nil && o.Pricing.Total > 0
}

// PaymentType is how the customer pays at placement time.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// Valid reports whether the payment type is supported.
func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentCredit
}

// Payment carries caller-supplied payment fields for a single placement
// call. Card data is ephemeral: it is forwarded to the provider and never
// written into the session store.
type Payment struct {
	Type         PaymentType
	CardNumber   string
	Expiration   string
	SecurityCode string
	PostalCode   string
	TipAmount    float64
}
