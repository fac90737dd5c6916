package ordering

import "github.com/mfowlewebs/dominos-mcp/pkg/types"

// Outcome status values for operations whose remote leg can be refused by
// the provider. A refusal is a normal result, not an error.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusPriced  = "priced"
	StatusPlaced  = "placed"
	StatusFailed  = "failed"
)

// StoreSearchResult is the outcome of a store lookup.
type StoreSearchResult struct {
	Address string        `json:"address"`
	Count   int           `json:"count"`
	Stores  []types.Store `json:"stores"`
}

// CreateOrderResult echoes the accepted order back to the caller with its
// new id.
type CreateOrderResult struct {
	OrderID  string              `json:"orderId"`
	StoreID  string              `json:"storeId"`
	Method   types.ServiceMethod `json:"serviceMethod"`
	Customer types.Customer      `json:"customer"`
}

// IndexedItem pairs an item with its zero-based position, the handle used
// for removal.
type IndexedItem struct {
	Index int `json:"index"`
	types.Item
}

// ItemListResult is the full item list after an add.
type ItemListResult struct {
	OrderID string        `json:"orderId"`
	Items   []IndexedItem `json:"items"`
}

// RemoveItemResult reports the count remaining after a removal.
type RemoveItemResult struct {
	OrderID   string `json:"orderId"`
	Remaining int    `json:"remaining"`
}

// OrderStateResult is a pure projection of an order's current fields,
// available at any lifecycle stage.
type OrderStateResult struct {
	OrderID   string                       `json:"orderId"`
	StoreID   string                       `json:"storeId"`
	Method    types.ServiceMethod          `json:"serviceMethod"`
	Customer  types.Customer               `json:"customer"`
	Items     []IndexedItem                `json:"items"`
	Pricing   *types.PricingBreakdown      `json:"pricing,omitempty"`
	Placement *types.PlacementConfirmation `json:"placement,omitempty"`
}

// ValidationResult reports the provider's verdict on an order.
type ValidationResult struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

// PricingResult carries the normalized breakdown on success, or the
// provider's reason on failure.
type PricingResult struct {
	OrderID   string                  `json:"orderId"`
	Status    string                  `json:"status"`
	Reason    string                  `json:"reason,omitempty"`
	Breakdown *types.PricingBreakdown `json:"breakdown,omitempty"`
}

// PlacementResult carries the confirmation on success, or the provider's
// reason on failure.
type PlacementResult struct {
	OrderID      string                       `json:"orderId"`
	Status       string                       `json:"status"`
	Reason       string                       `json:"reason,omitempty"`
	Confirmation *types.PlacementConfirmation `json:"confirmation,omitempty"`
}

// Milestone is one step of the tracking checklist. Done means the order has
// progressed at or past this stage.
type Milestone struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// TrackedOrderStatus is one tracked order with its milestone checklist. The
// raw provider status is preserved so callers can see exactly what the
// provider said.
type TrackedOrderStatus struct {
	ProviderOrderID string      `json:"providerOrderId"`
	Description     string      `json:"description,omitempty"`
	ServiceMethod   string      `json:"serviceMethod"`
	RawStatus       string      `json:"rawStatus"`
	Milestones      []Milestone `json:"milestones"`
}

// TrackingResult is the outcome of a tracking query.
type TrackingResult struct {
	Phone  string               `json:"phone,omitempty"`
	Orders []TrackedOrderStatus `json:"orders"`
}
