package ordering

import (
	"fmt"

	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// CreateOrderInput is the caller's intent for a new order.
type CreateOrderInput struct {
	StoreID  string
	Method   types.ServiceMethod
	Customer types.Customer
}

// ItemInput is one item descriptor for an add. Quantity defaults to 1 when
// zero. Options are passed through with a structural shape check only; the
// provider owns the customization schema and validates semantics during the
// remote validate step.
type ItemInput struct {
	Code     string
	Options  types.ItemOptions
	Quantity int
}

// CreateOrder allocates a new order aggregate: empty items, no pricing, no
// payment, no confirmation. Creation is purely local; the provider is not
// contacted until items exist or validation is requested. A delivery order
// without a customer address fails here and no order id is issued.
func (s *Service) CreateOrder(in CreateOrderInput) (*CreateOrderResult, error) {
	if in.StoreID == "" {
		return nil, fmt.Errorf("store id is required")
	}
	if err := checkCreation(in.Method, in.Customer); err != nil {
		return nil, err
	}

	order := &types.Order{
		StoreID:  in.StoreID,
		Method:   in.Method,
		Customer: in.Customer,
		Items:    []types.Item{},
	}
	id := s.sessions.CreateOrder(order)
	s.log.Info().Str("order_id", id).Str("store_id", in.StoreID).Str("method", string(in.Method)).Msg("order created")

	return &CreateOrderResult{
		OrderID:  id,
		StoreID:  in.StoreID,
		Method:   in.Method,
		Customer: in.Customer,
	}, nil
}

// AddItem appends one line item and returns the full updated list.
func (s *Service) AddItem(orderID string, item ItemInput) (*ItemListResult, error) {
	if item.Code == "" {
		return nil, ErrItemCodeRequired
	}
	if item.Quantity < 0 {
		return nil, types.ErrInvalidQuantity
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	order.Items = append(order.Items, types.Item{
		Code:     item.Code,
		Options:  item.Options.Clone(),
		Quantity: item.Quantity,
	})
	if err := s.sessions.UpdateOrder(orderID, order); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	return &ItemListResult{
		OrderID: orderID,
		Items:   indexItems(order.Items),
	}, nil
}

// RemoveItem removes exactly one entry by zero-based index, preserving the
// relative order of the rest, and returns the remaining count. An
// out-of-range index fails and leaves the list unchanged.
func (s *Service) RemoveItem(orderID string, index int) (*RemoveItemResult, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(order.Items) {
		return nil, fmt.Errorf("%w: index %d, order has %d item(s)", ErrItemIndexOutOfRange, index, len(order.Items))
	}

	order.Items = append(order.Items[:index], order.Items[index+1:]...)
	if err := s.sessions.UpdateOrder(orderID, order); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	return &RemoveItemResult{
		OrderID:   orderID,
		Remaining: len(order.Items),
	}, nil
}

// OrderState returns a snapshot of the order's current fields without
// mutating anything. Always available regardless of lifecycle stage; used
// to recover context after a gap in interaction.
func (s *Service) OrderState(orderID string) (*OrderStateResult, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	return &OrderStateResult{
		OrderID:   order.ID,
		StoreID:   order.StoreID,
		Method:    order.Method,
		Customer:  order.Customer,
		Items:     indexItems(order.Items),
		Pricing:   order.Pricing,
		Placement: order.Placement,
	}, nil
}

func (s *Service) getOrder(orderID string) (*types.Order, error) {
	order, err := s.sessions.GetOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return order, nil
}

func indexItems(items []types.Item) []IndexedItem {
	out := make([]IndexedItem, len(items))
	for i, item := range items {
		out[i] = IndexedItem{Index: i, Item: item}
	}
	return out
}
