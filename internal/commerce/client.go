package commerce

import (
	"context"
	"errors"
	"strings"

	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// Common errors
var (
	// ErrProvider wraps transport and malformed-response failures.
	ErrProvider = errors.New("provider request failed")
	// ErrIncompleteMenu marks a menu payload missing its product, variant,
	// or topping sections. This usually means a closed or invalid store
	// rather than a transient fault, so it is distinguishable.
	ErrIncompleteMenu = errors.New("incomplete menu data")
)

// Client is the narrow capability interface the workflow needs from the
// remote provider. Implementations must not retry; failures surface once.
type Client interface {
	// LocateStores resolves a free-text address to a ranked list of nearby
	// stores, in the provider's own order.
	LocateStores(ctx context.Context, address string, method types.ServiceMethod) ([]types.Store, error)

	// FetchMenu fetches a store's structured menu snapshot.
	FetchMenu(ctx context.Context, storeID string) (*RawMenu, error)

	// ValidateOrder submits the order for structural validation.
	ValidateOrder(ctx context.Context, order *OrderPayload) (*OrderResult, error)

	// PriceOrder prices the order.
	PriceOrder(ctx context.Context, order *OrderPayload) (*OrderResult, error)

	// PlaceOrder places the order with its payment instruction attached.
	PlaceOrder(ctx context.Context, order *OrderPayload) (*OrderResult, error)

	// Track queries order progress by provider order id when given,
	// otherwise by phone number and store.
	Track(ctx context.Context, req TrackRequest) ([]TrackedOrder, error)
}

// RawMenu is the provider's structured menu payload. Products group
// variants; variants are the orderable codes; toppings describe the
// customization schema the provider validates against.
type RawMenu struct {
	Products map[string]Product            `json:"Products"`
	Variants map[string]Variant            `json:"Variants"`
	Toppings map[string]map[string]Topping `json:"Toppings"`
}

// Complete reports whether all three required sections are present and
// non-empty.
func (m *RawMenu) Complete() bool {
	return m != nil && len(m.Products) > 0 && len(m.Variants) > 0 && len(m.Toppings) > 0
}

// Product is one logical menu item grouping its catalog variants.
type Product struct {
	Code        string   `json:"Code"`
	Name        string   `json:"Name"`
	Description string   `json:"Description"`
	ProductType string   `json:"ProductType"`
	Variants    []string `json:"Variants"`
}

// Variant is one orderable variant code with its display name and price.
type Variant struct {
	Code        string `json:"Code"`
	Name        string `json:"Name"`
	Price       string `json:"Price"`
	ProductCode string `json:"ProductCode"`
	SizeCode    string `json:"SizeCode"`
}

// Topping is one customization option.
type Topping struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// OrderPayload mirrors the provider's order envelope for validate, price,
// and place calls.
type OrderPayload struct {
	StoreID       string          `json:"StoreID"`
	ServiceMethod string          `json:"ServiceMethod"`
	FirstName     string          `json:"FirstName"`
	LastName      string          `json:"LastName"`
	Email         string          `json:"Email,omitempty"`
	Phone         string          `json:"Phone"`
	Address       *AddressPayload `json:"Address,omitempty"`
	Products      []ProductLine   `json:"Products"`
	Payments      []PaymentLine   `json:"Payments,omitempty"`
}

// AddressPayload is the provider's address shape.
type AddressPayload struct {
	Street     string `json:"Street"`
	City       string `json:"City"`
	Region     string `json:"Region"`
	PostalCode string `json:"PostalCode"`
}

// ProductLine is one order line on the wire.
type ProductLine struct {
	Code    string                       `json:"Code"`
	Qty     int                          `json:"Qty"`
	Options map[string]map[string]string `json:"Options,omitempty"`
}

// PaymentLine is the single payment instruction attached at placement.
type PaymentLine struct {
	Type         string  `json:"Type"`
	Amount       float64 `json:"Amount"`
	Number       string  `json:"Number,omitempty"`
	Expiration   string  `json:"Expiration,omitempty"`
	SecurityCode string  `json:"SecurityCode,omitempty"`
	PostalCode   string  `json:"PostalCode,omitempty"`
	TipAmount    float64 `json:"TipAmount,omitempty"`
}

// Amounts is the provider's pricing summary. Menu is the pre-tax subtotal,
// Surcharge the delivery fee, Customer the total due.
type Amounts struct {
	Menu      float64 `json:"Menu"`
	Surcharge float64 `json:"Surcharge"`
	Tax       float64 `json:"Tax"`
	Customer  float64 `json:"Customer"`
}

// OrderResult is the provider's answer to a validate, price, or place call
// that completed at the protocol level. A rejected order is still an
// OrderResult, not an error.
type OrderResult struct {
	Status               int
	Reason               string
	Amounts              Amounts
	ProviderOrderID      string
	EstimatedWaitMinutes string
}

// Rejected reports whether the provider refused the order.
func (r *OrderResult) Rejected() bool {
	return r.Status < 0
}

// TrackRequest addresses a tracking query. OrderID takes precedence when
// set; otherwise Phone (digits only) and StoreID are used.
type TrackRequest struct {
	Phone   string
	StoreID string
	OrderID string
}

// TrackedOrder is one order's progress as reported by the tracker. The
// stage timestamps are optional; when present they refine the status-string
// stage inference.
type TrackedOrder struct {
	OrderID          string `json:"OrderID"`
	StoreID          string `json:"StoreID"`
	Phone            string `json:"Phone"`
	ServiceMethod    string `json:"ServiceMethod"`
	OrderStatus      string `json:"OrderStatus"`
	OrderDescription string `json:"OrderDescription"`
	StartTime        string `json:"StartTime"`
	OvenTime         string `json:"OvenTime"`
	RackTime         string `json:"RackTime"`
	RouteTime        string `json:"RouteTime"`
	DeliveryTime     string `json:"DeliveryTime"`
}

// joinCodes flattens provider status-item codes into one reason string.
func joinCodes(items []statusItem) string {
	codes := make([]string, 0, len(items))
	for _, it := range items {
		if it.Code != "" {
			codes = append(codes, it.Code)
		}
	}
	if len(codes) == 0 {
		return "order rejected by provider"
	}
	return strings.Join(codes, "; ")
}

type statusItem struct {
	Code string `json:"Code"`
}
