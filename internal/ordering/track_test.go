package ordering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
)

func TestTrackNormalizesPhone(t *testing.T) {
	svc, _, client := newTestService()
	var gotReq commerce.TrackRequest
	client.trackFunc = func(ctx context.Context, req commerce.TrackRequest) ([]commerce.TrackedOrder, error) {
		gotReq = req
		return nil, nil
	}

	result, err := svc.Track(context.Background(), TrackInput{Phone: "(555) 010-0100", StoreID: "1001"})
	require.NoError(t, err)
	assert.Equal(t, "5550100100", gotReq.Phone)
	assert.Equal(t, "1001", gotReq.StoreID)
	assert.Equal(t, "5550100100", result.Phone)
}

func TestTrackRequiresPhoneOrOrderID(t *testing.T) {
	svc, _, client := newTestService()

	_, err := svc.Track(context.Background(), TrackInput{Phone: "ext. only", StoreID: "1001"})
	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.Zero(t, client.trackCalls)

	// A provider order id alone is enough.
	_, err = svc.Track(context.Background(), TrackInput{OrderID: "SO-12345"})
	require.NoError(t, err)
	assert.Equal(t, 1, client.trackCalls)
}

func TestTrackDeliveryMilestones(t *testing.T) {
	svc, _, client := newTestService()
	client.trackFunc = func(ctx context.Context, req commerce.TrackRequest) ([]commerce.TrackedOrder, error) {
		return []commerce.TrackedOrder{{
			OrderID:       "SO-1",
			ServiceMethod: "Delivery",
			OrderStatus:   "Out for Delivery",
		}}, nil
	}

	result, err := svc.Track(context.Background(), TrackInput{Phone: "5550100100", StoreID: "1001"})
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)

	order := result.Orders[0]
	assert.Equal(t, "Out for Delivery", order.RawStatus)
	require.Len(t, order.Milestones, 6)

	want := map[string]bool{
		"placed":           true,
		"preparation":      true,
		"baking":           true,
		"quality-check":    true,
		"out-for-delivery": true,
		"delivered":        false,
	}
	for _, m := range order.Milestones {
		assert.Equal(t, want[m.Name], m.Done, "milestone %s", m.Name)
	}
}

func TestTrackCarryoutMilestones(t *testing.T) {
	svc, _, client := newTestService()
	client.trackFunc = func(ctx context.Context, req commerce.TrackRequest) ([]commerce.TrackedOrder, error) {
		return []commerce.TrackedOrder{{
			OrderID:       "SO-2",
			ServiceMethod: "Carryout",
			OrderStatus:   "Bake",
		}}, nil
	}

	result, err := svc.Track(context.Background(), TrackInput{Phone: "5550100100", StoreID: "1001"})
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)

	order := result.Orders[0]
	require.Len(t, order.Milestones, 6)
	assert.Equal(t, "ready-for-pickup", order.Milestones[4].Name)
	assert.Equal(t, "picked-up", order.Milestones[5].Name)

	want := []bool{true, true, true, false, false, false}
	for i, m := range order.Milestones {
		assert.Equal(t, want[i], m.Done, "milestone %s", m.Name)
	}
}

func TestTrackUnknownStatusIsAtLeastPlaced(t *testing.T) {
	svc, _, client := newTestService()
	client.trackFunc = func(ctx context.Context, req commerce.TrackRequest) ([]commerce.TrackedOrder, error) {
		return []commerce.TrackedOrder{{
			OrderID:       "SO-3",
			ServiceMethod: "Delivery",
			OrderStatus:   "Some Future Status",
		}}, nil
	}

	result, err := svc.Track(context.Background(), TrackInput{Phone: "5550100100", StoreID: "1001"})
	require.NoError(t, err)
	order := result.Orders[0]

	assert.Equal(t, "Some Future Status", order.RawStatus)
	assert.True(t, order.Milestones[0].Done, "a tracked order is at least placed")
	for _, m := range order.Milestones[1:] {
		assert.False(t, m.Done, "milestone %s", m.Name)
	}
}
