package commerce

import "strings"

// TrackStage is an explicit ordered progress model for tracked orders.
// Stages are totally ordered; an order at stage N has passed every stage
// below N. Provider status strings normalize into this enumeration through
// one table so a vocabulary change breaks in exactly one place.
type TrackStage int

const (
	StageUnknown TrackStage = iota
	StagePlaced
	StagePrep
	StageBake
	StageQualityCheck
	StageOut      // out for delivery, or ready for pickup
	StageComplete // delivered, or picked up
)

// stageByStatus maps normalized provider status strings to stages. The
// provider's vocabulary is not documented; unlisted statuses resolve to
// StageUnknown and are treated as "at least placed" by callers, since the
// tracker only reports orders that exist.
var stageByStatus = map[string]TrackStage{
	"order placed":     StagePlaced,
	"placed":           StagePlaced,
	"new":              StagePlaced,
	"prep":             StagePrep,
	"makeline":         StagePrep,
	"being prepared":   StagePrep,
	"bake":             StageBake,
	"oven":             StageBake,
	"baking":           StageBake,
	"quality check":    StageQualityCheck,
	"qualitycheck":     StageQualityCheck,
	"out the door":     StageOut,
	"out for delivery": StageOut,
	"routing station":  StageOut,
	"ready for pickup": StageOut,
	"ready":            StageOut,
	"complete":         StageComplete,
	"delivered":        StageComplete,
	"picked up":        StageComplete,
}

// StageFromStatus normalizes a provider status string to a stage.
func StageFromStatus(status string) TrackStage {
	key := strings.ToLower(strings.TrimSpace(status))
	if stage, ok := stageByStatus[key]; ok {
		return stage
	}
	return StageUnknown
}

// AtLeast reports whether s has progressed at or past other.
func (s TrackStage) AtLeast(other TrackStage) bool {
	return s >= other
}

// Stage infers the order's current stage. The status string is the primary
// signal; non-empty stage timestamps raise the result when the tracker has
// recorded progress the status string lags behind. An order the tracker
// returned is at least placed.
func (t TrackedOrder) Stage() TrackStage {
	stage := StageFromStatus(t.OrderStatus)
	if stage == StageUnknown {
		stage = StagePlaced
	}

	byTimestamp := []struct {
		ts    string
		stage TrackStage
	}{
		{t.StartTime, StagePlaced},
		{t.OvenTime, StageBake},
		{t.RackTime, StageQualityCheck},
		{t.RouteTime, StageOut},
		{t.DeliveryTime, StageComplete},
	}
	for _, m := range byTimestamp {
		if m.ts != "" && m.stage > stage {
			stage = m.stage
		}
	}
	return stage
}
