package ordering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// newOrderWithItem creates an order with one item and returns its id.
func newOrderWithItem(t *testing.T, svc *Service, method types.ServiceMethod) string {
	t.Helper()
	customer := carryoutCustomer()
	if method == types.ServiceDelivery {
		customer = deliveryCustomer()
	}
	created, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: method, Customer: customer})
	require.NoError(t, err)
	_, err = svc.AddItem(created.OrderID, ItemInput{Code: "16SCREEN"})
	require.NoError(t, err)
	return created.OrderID
}

func TestValidateEmptyOrderSkipsRemoteCall(t *testing.T) {
	svc, _, client := newTestService()
	created, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: types.ServiceCarryout, Customer: carryoutCustomer()})
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), created.OrderID)
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Zero(t, client.validateCalls)
}

func TestValidateUnknownOrder(t *testing.T) {
	svc, _, client := newTestService()

	_, err := svc.Validate(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Zero(t, client.validateCalls)
}

func TestValidateRejectionIsAResultNotAnError(t *testing.T) {
	svc, _, client := newTestService()
	client.validateFunc = func(ctx context.Context, order *commerce.OrderPayload) (*commerce.OrderResult, error) {
		return &commerce.OrderResult{Status: -1, Reason: "InvalidProducts"}, nil
	}
	id := newOrderWithItem(t, svc, types.ServiceCarryout)

	result, err := svc.Validate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, "InvalidProducts", result.Reason)
}

func TestValidateSuccess(t *testing.T) {
	svc, _, _ := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceCarryout)

	result, err := svc.Validate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusValid, result.Status)
	assert.Empty(t, result.Reason)
}

func TestPriceDeliveryIncludesSurcharge(t *testing.T) {
	svc, _, _ := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceDelivery)

	result, err := svc.Price(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, StatusPriced, result.Status)
	require.NotNil(t, result.Breakdown)
	require.NotNil(t, result.Breakdown.DeliveryFee, "delivery orders carry a delivery fee field")
	assert.InDelta(t, 3.99, *result.Breakdown.DeliveryFee, 0.001)
	assert.InDelta(t, 15.99, result.Breakdown.Subtotal, 0.001)
	assert.InDelta(t, 21.42, result.Breakdown.Total, 0.001)
}

func TestPriceCarryoutOmitsSurcharge(t *testing.T) {
	svc, _, _ := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceCarryout)

	result, err := svc.Price(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, result.Breakdown)
	assert.Nil(t, result.Breakdown.DeliveryFee, "carryout breakdown must never include a delivery fee")
}

func TestPricePersistsBreakdown(t *testing.T) {
	svc, _, _ := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceDelivery)

	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	state, err := svc.OrderState(id)
	require.NoError(t, err)
	require.NotNil(t, state.Pricing)
	assert.InDelta(t, 21.42, state.Pricing.Total, 0.001)
}

func TestPriceRejectionIsAResult(t *testing.T) {
	svc, _, client := newTestService()
	client.priceFunc = func(ctx context.Context, order *commerce.OrderPayload) (*commerce.OrderResult, error) {
		return &commerce.OrderResult{Status: -1, Reason: "StoreClosed"}, nil
	}
	id := newOrderWithItem(t, svc, types.ServiceCarryout)

	result, err := svc.Price(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, "StoreClosed", result.Reason)

	// Nothing persisted on failure.
	state, err := svc.OrderState(id)
	require.NoError(t, err)
	assert.Nil(t, state.Pricing)
}

func TestPlaceBeforePriceFailsLocally(t *testing.T) {
	svc, _, client := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceCarryout)

	_, err := svc.Place(context.Background(), id, types.Payment{Type: types.PaymentCash})
	assert.ErrorIs(t, err, ErrNotPriced)
	assert.Zero(t, client.placeCalls, "placement must not reach the provider before pricing")
}

func TestPlaceCreditRequiresCardFields(t *testing.T) {
	svc, _, client := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceDelivery)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	tests := []struct {
		name string
		pay  types.Payment
	}{
		{"no number", types.Payment{Type: types.PaymentCredit, Expiration: "0127", SecurityCode: "123"}},
		{"no expiration", types.Payment{Type: types.PaymentCredit, CardNumber: "4100123422343234", SecurityCode: "123"}},
		{"no security code", types.Payment{Type: types.PaymentCredit, CardNumber: "4100123422343234", Expiration: "0127"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Place(context.Background(), id, tt.pay)
			assert.ErrorIs(t, err, ErrMissingCardFields)
		})
	}
	assert.Zero(t, client.placeCalls)
}

func TestPlaceCarryoutDropsTip(t *testing.T) {
	svc, _, client := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceCarryout)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	result, err := svc.Place(context.Background(), id, types.Payment{
		Type:         types.PaymentCredit,
		CardNumber:   "4100123422343234",
		Expiration:   "0127",
		SecurityCode: "123",
		PostalCode:   "62701",
		TipAmount:    5.00,
	})
	require.NoError(t, err)
	require.Equal(t, StatusPlaced, result.Status)

	require.NotNil(t, client.lastPlacePayload)
	require.Len(t, client.lastPlacePayload.Payments, 1)
	assert.Zero(t, client.lastPlacePayload.Payments[0].TipAmount, "pickup orders have no delivery tip")
}

func TestPlaceDeliveryKeepsTip(t *testing.T) {
	svc, _, client := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceDelivery)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Place(context.Background(), id, types.Payment{Type: types.PaymentCash, TipAmount: 4.50})
	require.NoError(t, err)

	require.Len(t, client.lastPlacePayload.Payments, 1)
	assert.InDelta(t, 4.50, client.lastPlacePayload.Payments[0].TipAmount, 0.001)
}

func TestPlaceCarryoutCreditRequiresBillingPostal(t *testing.T) {
	svc, _, client := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceCarryout)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Place(context.Background(), id, types.Payment{
		Type:         types.PaymentCredit,
		CardNumber:   "4100123422343234",
		Expiration:   "0127",
		SecurityCode: "123",
	})
	assert.ErrorIs(t, err, ErrBillingPostalRequired)
	assert.Zero(t, client.placeCalls)
}

func TestPlaceAttachesExactlyOnePayment(t *testing.T) {
	svc, _, client := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceDelivery)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Place(context.Background(), id, types.Payment{Type: types.PaymentCash})
	require.NoError(t, err)

	require.Len(t, client.lastPlacePayload.Payments, 1)
	assert.Equal(t, "Cash", client.lastPlacePayload.Payments[0].Type)
	assert.InDelta(t, 21.42, client.lastPlacePayload.Payments[0].Amount, 0.001)
}

func TestPlacePersistsConfirmationNotPayment(t *testing.T) {
	svc, sessions, _ := newTestService()
	id := newOrderWithItem(t, svc, types.ServiceDelivery)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	result, err := svc.Place(context.Background(), id, types.Payment{
		Type:         types.PaymentCredit,
		CardNumber:   "4100123422343234",
		Expiration:   "0127",
		SecurityCode: "123",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Confirmation)
	assert.Equal(t, "SO-12345", result.Confirmation.ProviderOrderID)
	assert.Contains(t, result.Confirmation.Estimate, "25-35")

	order, err := sessions.GetOrder(id)
	require.NoError(t, err)
	require.NotNil(t, order.Placement)
	assert.Equal(t, "SO-12345", order.Placement.ProviderOrderID)
}

func TestPlaceDeclineIsAResult(t *testing.T) {
	svc, _, client := newTestService()
	client.placeFunc = func(ctx context.Context, order *commerce.OrderPayload) (*commerce.OrderResult, error) {
		return &commerce.OrderResult{Status: -1, Reason: "PaymentDeclined"}, nil
	}
	id := newOrderWithItem(t, svc, types.ServiceDelivery)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	result, err := svc.Place(context.Background(), id, types.Payment{Type: types.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, "PaymentDeclined", result.Reason)

	state, err := svc.OrderState(id)
	require.NoError(t, err)
	assert.Nil(t, state.Placement)
}

func TestCarryoutEstimateHasPickupInstructions(t *testing.T) {
	svc, _, client := newTestService()
	client.placeFunc = func(ctx context.Context, order *commerce.OrderPayload) (*commerce.OrderResult, error) {
		return &commerce.OrderResult{Status: 0, ProviderOrderID: "SO-9", EstimatedWaitMinutes: "15-20"}, nil
	}
	id := newOrderWithItem(t, svc, types.ServiceCarryout)
	_, err := svc.Price(context.Background(), id)
	require.NoError(t, err)

	result, err := svc.Place(context.Background(), id, types.Payment{Type: types.PaymentCash})
	require.NoError(t, err)
	assert.Contains(t, result.Confirmation.Estimate, "Ready for pickup around")
	assert.Contains(t, result.Confirmation.Estimate, "carryout counter")
}
