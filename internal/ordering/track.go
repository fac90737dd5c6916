package ordering

import (
	"context"
	"fmt"
	"strings"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
)

// TrackInput addresses a tracking query: by known provider order id when
// given, otherwise by phone number and store.
type TrackInput struct {
	Phone   string
	StoreID string
	OrderID string
}

// milestoneStages is the ordered checklist shared by both service methods;
// only the final two milestone names differ.
var milestoneStages = []commerce.TrackStage{
	commerce.StagePlaced,
	commerce.StagePrep,
	commerce.StageBake,
	commerce.StageQualityCheck,
	commerce.StageOut,
	commerce.StageComplete,
}

var deliveryMilestones = []string{"placed", "preparation", "baking", "quality-check", "out-for-delivery", "delivered"}
var carryoutMilestones = []string{"placed", "preparation", "baking", "quality-check", "ready-for-pickup", "picked-up"}

// Track queries the provider's tracker. It is stateless with respect to the
// session store: orders are addressed by phone and store, independent of
// local order ids, so an order placed elsewhere is trackable too. Each
// milestone reports true once the order has progressed at or past that
// stage.
func (s *Service) Track(ctx context.Context, in TrackInput) (*TrackingResult, error) {
	phone := digitsOnly(in.Phone)
	if in.OrderID == "" && phone == "" {
		return nil, ErrPhoneRequired
	}

	orders, err := s.client.Track(ctx, commerce.TrackRequest{
		Phone:   phone,
		StoreID: in.StoreID,
		OrderID: in.OrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("track order: %w", err)
	}

	result := &TrackingResult{
		Phone:  phone,
		Orders: make([]TrackedOrderStatus, len(orders)),
	}
	for i, order := range orders {
		result.Orders[i] = trackedStatus(order)
	}
	return result, nil
}

func trackedStatus(order commerce.TrackedOrder) TrackedOrderStatus {
	names := deliveryMilestones
	if strings.EqualFold(order.ServiceMethod, "Carryout") {
		names = carryoutMilestones
	}

	stage := order.Stage()
	milestones := make([]Milestone, len(milestoneStages))
	for i, required := range milestoneStages {
		milestones[i] = Milestone{
			Name: names[i],
			Done: stage.AtLeast(required),
		}
	}

	return TrackedOrderStatus{
		ProviderOrderID: order.OrderID,
		Description:     order.OrderDescription,
		ServiceMethod:   order.ServiceMethod,
		RawStatus:       order.OrderStatus,
		Milestones:      milestones,
	}
}

// digitsOnly strips everything but digits from a phone number before it is
// sent to the tracker.
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
