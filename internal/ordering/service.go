package ordering

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
	"github.com/mfowlewebs/dominos-mcp/internal/logging"
	"github.com/mfowlewebs/dominos-mcp/internal/session"
	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// Service executes the workflow operations against one session store and
// one commerce client. Operations run one at a time per order from the
// caller's perspective; the service itself holds no state between calls.
type Service struct {
	sessions *session.Store
	client   commerce.Client
	log      zerolog.Logger
}

// New creates a workflow service.
func New(sessions *session.Store, client commerce.Client) *Service {
	return &Service{
		sessions: sessions,
		client:   client,
		log:      logging.WithComponent("ordering"),
	}
}

// FindNearbyStores resolves a free-text address to nearby stores, keeps
// only the ones that can take an online order right now, and sorts them by
// ascending distance (stable, so the provider's order breaks ties). The
// session's candidate list is replaced wholesale.
func (s *Service) FindNearbyStores(ctx context.Context, address string, method types.ServiceMethod) (*StoreSearchResult, error) {
	if address == "" {
		return nil, ErrAddressQueryRequired
	}
	if method == "" {
		method = types.ServiceDelivery
	}
	if !method.Valid() {
		return nil, types.ErrInvalidServiceMethod
	}

	stores, err := s.client.LocateStores(ctx, address, method)
	if err != nil {
		return nil, fmt.Errorf("find nearby stores: %w", err)
	}

	orderable := make([]types.Store, 0, len(stores))
	for _, st := range stores {
		if st.Orderable() {
			orderable = append(orderable, st)
		}
	}
	sort.SliceStable(orderable, func(i, j int) bool {
		return orderable[i].DistanceMiles < orderable[j].DistanceMiles
	})

	s.sessions.RecordStores(orderable)
	s.log.Debug().Str("address", address).Int("count", len(orderable)).Msg("recorded store candidates")

	return &StoreSearchResult{
		Address: address,
		Count:   len(orderable),
		Stores:  orderable,
	}, nil
}
