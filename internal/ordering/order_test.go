package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

func TestCreateOrderDelivery(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CreateOrder(CreateOrderInput{
		StoreID:  "1001",
		Method:   types.ServiceDelivery,
		Customer: deliveryCustomer(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.OrderID)
	assert.Equal(t, "1001", result.StoreID)
	assert.Equal(t, types.ServiceDelivery, result.Method)
	assert.Equal(t, "Ada", result.Customer.FirstName)

	// Round trip: a fresh projection reports zero items and the exact
	// customer fields supplied.
	state, err := svc.OrderState(result.OrderID)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
	assert.Equal(t, types.ServiceDelivery, state.Method)
	assert.Equal(t, deliveryCustomer(), state.Customer)
	assert.Nil(t, state.Pricing)
	assert.Nil(t, state.Placement)
}

func TestCreateOrderDeliveryWithoutAddress(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateOrder(CreateOrderInput{
		StoreID:  "1001",
		Method:   types.ServiceDelivery,
		Customer: carryoutCustomer(),
	})
	assert.ErrorIs(t, err, ErrAddressRequired)

	// No order id was issued; any fabricated id is unknown.
	_, err = svc.OrderState("fabricated-id")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateOrderCarryoutWithoutAddress(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CreateOrder(CreateOrderInput{
		StoreID:  "1001",
		Method:   types.ServiceCarryout,
		Customer: carryoutCustomer(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderID)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name     string
		method   types.ServiceMethod
		customer types.Customer
		wantErr  error
	}{
		{"bad method", "DineIn", deliveryCustomer(), types.ErrInvalidServiceMethod},
		{"no first name", types.ServiceCarryout, types.Customer{LastName: "L", Phone: "5550100"}, types.ErrMissingFirstName},
		{"no last name", types.ServiceCarryout, types.Customer{FirstName: "A", Phone: "5550100"}, types.ErrMissingLastName},
		{"no phone", types.ServiceCarryout, types.Customer{FirstName: "A", LastName: "L"}, types.ErrMissingPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: tt.method, Customer: tt.customer})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: types.ServiceCarryout, Customer: carryoutCustomer()})
	require.NoError(t, err)

	result, err := svc.AddItem(created.OrderID, ItemInput{Code: "16SCREEN"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Items[0].Quantity)
	assert.Equal(t, 0, result.Items[0].Index)
}

func TestAddItemUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddItem("no-such-order", ItemInput{Code: "16SCREEN"})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAddItemPassesOptionsThrough(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: types.ServiceCarryout, Customer: carryoutCustomer()})
	require.NoError(t, err)

	// Arbitrary option structures are accepted; semantics belong to the
	// provider's validate step.
	options := types.ItemOptions{
		"P": {"1/2": "1.5"},
		"X": {"1/1": "1"},
	}
	result, err := svc.AddItem(created.OrderID, ItemInput{Code: "16SCREEN", Options: options, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, options, result.Items[0].Options)
	assert.Equal(t, 2, result.Items[0].Quantity)
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: types.ServiceCarryout, Customer: carryoutCustomer()})
	require.NoError(t, err)

	for _, code := range []string{"A", "B", "C", "D"} {
		_, err := svc.AddItem(created.OrderID, ItemInput{Code: code})
		require.NoError(t, err)
	}

	result, err := svc.RemoveItem(created.OrderID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Remaining)

	state, err := svc.OrderState(created.OrderID)
	require.NoError(t, err)
	codes := make([]string, len(state.Items))
	for i, item := range state.Items {
		codes[i] = item.Code
	}
	assert.Equal(t, []string{"A", "C", "D"}, codes)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.CreateOrder(CreateOrderInput{StoreID: "1001", Method: types.ServiceCarryout, Customer: carryoutCustomer()})
	require.NoError(t, err)
	_, err = svc.AddItem(created.OrderID, ItemInput{Code: "A"})
	require.NoError(t, err)
	_, err = svc.AddItem(created.OrderID, ItemInput{Code: "B"})
	require.NoError(t, err)

	_, err = svc.RemoveItem(created.OrderID, 5)
	assert.ErrorIs(t, err, ErrItemIndexOutOfRange)

	_, err = svc.RemoveItem(created.OrderID, -1)
	assert.ErrorIs(t, err, ErrItemIndexOutOfRange)

	// Item list unchanged after the failed removal.
	state, err := svc.OrderState(created.OrderID)
	require.NoError(t, err)
	assert.Len(t, state.Items, 2)
}
