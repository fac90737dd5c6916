package ordering

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

const carryoutInstructions = "Ask for your order at the carryout counter inside the store."

// Validate submits the order for remote validation. An order with no items
// fails locally; it cannot possibly be valid and the round trip would be
// wasted. A provider rejection is an expected, recoverable outcome and
// comes back as an invalid-status result, not an error.
func (s *Service) Validate(ctx context.Context, orderID string) (*ValidationResult, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyOrder, orderID)
	}

	res, err := s.client.ValidateOrder(ctx, orderPayload(order))
	if err != nil {
		return nil, fmt.Errorf("validate order: %w", err)
	}

	if res.Rejected() {
		return &ValidationResult{OrderID: orderID, Status: StatusInvalid, Reason: res.Reason}, nil
	}
	return &ValidationResult{OrderID: orderID, Status: StatusValid}, nil
}

// Price prices the order remotely and persists the normalized breakdown to
// the session before returning. The delivery surcharge appears only on
// delivery orders. A provider refusal comes back as a failed-status result.
func (s *Service) Price(ctx context.Context, orderID string) (*PricingResult, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	res, err := s.client.PriceOrder(ctx, orderPayload(order))
	if err != nil {
		return nil, fmt.Errorf("price order: %w", err)
	}

	if res.Rejected() {
		return &PricingResult{OrderID: orderID, Status: StatusFailed, Reason: res.Reason}, nil
	}

	breakdown := &types.PricingBreakdown{
		Subtotal: res.Amounts.Menu,
		Tax:      res.Amounts.Tax,
		Total:    res.Amounts.Customer,
	}
	if order.Method == types.ServiceDelivery {
		fee := res.Amounts.Surcharge
		breakdown.DeliveryFee = &fee
	}

	order.Pricing = breakdown
	if err := s.sessions.UpdateOrder(orderID, order); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	s.log.Info().Str("order_id", orderID).Float64("total", breakdown.Total).Msg("order priced")

	return &PricingResult{OrderID: orderID, Status: StatusPriced, Breakdown: breakdown}, nil
}

// Place places the order with exactly one payment instruction attached. The
// order must carry a prior successful pricing; credit payments must carry
// full card fields. Both are checked locally before any remote call. On
// success the confirmation is persisted; the payment itself never is. A
// declined card or other provider refusal comes back as a failed-status
// result.
func (s *Service) Place(ctx context.Context, orderID string, pay types.Payment) (*PlacementResult, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Priced() {
		return nil, fmt.Errorf("%w: %s", ErrNotPriced, orderID)
	}

	payment, err := buildPayment(order, pay)
	if err != nil {
		return nil, err
	}

	payload := orderPayload(order)
	payload.Payments = append(payload.Payments, payment)

	res, err := s.client.PlaceOrder(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	if res.Rejected() {
		return &PlacementResult{OrderID: orderID, Status: StatusFailed, Reason: res.Reason}, nil
	}

	confirmation := &types.PlacementConfirmation{
		ProviderOrderID: res.ProviderOrderID,
		Status:          StatusPlaced,
		Estimate:        estimateFor(order.Method, res.EstimatedWaitMinutes, time.Now()),
	}
	order.Placement = confirmation
	if err := s.sessions.UpdateOrder(orderID, order); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	s.log.Info().Str("order_id", orderID).Str("provider_order_id", confirmation.ProviderOrderID).Msg("order placed")

	return &PlacementResult{OrderID: orderID, Status: StatusPlaced, Confirmation: confirmation}, nil
}

// estimateFor renders the service-method-specific ETA: a time range for
// delivery, a single readiness time plus fixed pickup instructions for
// carryout.
func estimateFor(method types.ServiceMethod, waitMinutes string, now time.Time) string {
	if method == types.ServiceDelivery {
		if waitMinutes == "" {
			return "Delivery time estimate unavailable"
		}
		return fmt.Sprintf("Estimated delivery in %s minutes", waitMinutes)
	}

	ready := now.Add(time.Duration(waitUpperBound(waitMinutes)) * time.Minute)
	return fmt.Sprintf("Ready for pickup around %s. %s", ready.Format(time.Kitchen), carryoutInstructions)
}

// waitUpperBound parses the upper bound of a provider wait range like
// "20-30". Unparseable input falls back to a conservative 25 minutes.
func waitUpperBound(waitMinutes string) int {
	parts := strings.Split(waitMinutes, "-")
	if n, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil && n > 0 {
		return n
	}
	return 25
}
