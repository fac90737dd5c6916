package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/mfowlewebs/dominos-mcp/internal/logging"
	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// Provider configuration
const (
	DefaultAPIBase     = "https://order.dominos.com/power"
	DefaultTrackerBase = "https://tracker.dominos.com/tracker-presence-service"
	DefaultTimeout     = 30 * time.Second

	EnvAPIBase     = "DOMINOS_API_BASE"
	EnvTrackerBase = "DOMINOS_TRACKER_BASE"
	EnvHTTPTimeout = "DOMINOS_HTTP_TIMEOUT"

	// Menus are immutable snapshots, so a small LRU of recently fetched
	// stores avoids refetching during one conversation.
	menuCacheSize = 64
)

// Config holds PowerClient configuration.
type Config struct {
	APIBase     string
	TrackerBase string
	Timeout     time.Duration
}

// PowerClient implements Client against the provider's power API.
type PowerClient struct {
	apiBase     string
	trackerBase string
	httpClient  *http.Client
	menuCache   *lru.Cache[string, *RawMenu]
	menuGroup   singleflight.Group
	log         zerolog.Logger
}

// NewFromEnv creates a PowerClient configured from environment variables,
// falling back to the public endpoints.
func NewFromEnv() *PowerClient {
	cfg := Config{
		APIBase:     os.Getenv(EnvAPIBase),
		TrackerBase: os.Getenv(EnvTrackerBase),
	}
	if secs := os.Getenv(EnvHTTPTimeout); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	return NewPowerClient(cfg)
}

// NewPowerClient creates a PowerClient with explicit configuration. Zero
// values take defaults.
func NewPowerClient(cfg Config) *PowerClient {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.TrackerBase == "" {
		cfg.TrackerBase = DefaultTrackerBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cache, err := lru.New[string, *RawMenu](menuCacheSize)
	if err != nil {
		// Only possible with a non-positive size.
		cache, _ = lru.New[string, *RawMenu](menuCacheSize)
	}

	return &PowerClient{
		apiBase:     cfg.APIBase,
		trackerBase: cfg.TrackerBase,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		menuCache: cache,
		log:       logging.WithComponent("commerce"),
	}
}

// LocateStores implements Client.
func (c *PowerClient) LocateStores(ctx context.Context, address string, method types.ServiceMethod) ([]types.Store, error) {
	q := url.Values{}
	q.Set("s", address)
	q.Set("type", string(method))

	var resp struct {
		Status int `json:"Status"`
		Stores []struct {
			StoreID                           string  `json:"StoreID"`
			AddressDescription                string  `json:"AddressDescription"`
			Phone                             string  `json:"Phone"`
			IsOpen                            bool    `json:"IsOpen"`
			IsOnlineCapable                   bool    `json:"IsOnlineCapable"`
			IsOnlineNow                       bool    `json:"IsOnlineNow"`
			AllowDeliveryOrders               bool    `json:"AllowDeliveryOrders"`
			AllowCarryoutOrders               bool    `json:"AllowCarryoutOrders"`
			MinDistance                       float64 `json:"MinDistance"`
			ServiceMethodEstimatedWaitMinutes struct {
				Delivery struct {
					Min int `json:"Min"`
					Max int `json:"Max"`
				} `json:"Delivery"`
				Carryout struct {
					Min int `json:"Min"`
					Max int `json:"Max"`
				} `json:"Carryout"`
			} `json:"ServiceMethodEstimatedWaitMinutes"`
		} `json:"Stores"`
	}

	if err := c.getJSON(ctx, c.apiBase+"/store-locator?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("locate stores: %w", err)
	}
	if resp.Status < 0 {
		// The locator fails like this when it cannot geocode the address.
		return nil, fmt.Errorf("%w: could not resolve address %q", ErrProvider, address)
	}

	stores := make([]types.Store, 0, len(resp.Stores))
	for _, s := range resp.Stores {
		wait := s.ServiceMethodEstimatedWaitMinutes
		stores = append(stores, types.Store{
			ID:             s.StoreID,
			Address:        s.AddressDescription,
			Phone:          s.Phone,
			IsOpen:         s.IsOpen,
			IsOnline:       s.IsOnlineCapable && s.IsOnlineNow,
			AllowsDelivery: s.AllowDeliveryOrders,
			AllowsCarryout: s.AllowCarryoutOrders,
			DeliveryWait:   types.WaitEstimate{MinMinutes: wait.Delivery.Min, MaxMinutes: wait.Delivery.Max},
			CarryoutWait:   types.WaitEstimate{MinMinutes: wait.Carryout.Min, MaxMinutes: wait.Carryout.Max},
			DistanceMiles:  s.MinDistance,
		})
	}

	c.log.Debug().Int("count", len(stores)).Msg("store locator response")
	return stores, nil
}

// FetchMenu implements Client. Complete menus are cached per store;
// concurrent fetches for the same store collapse to one request.
func (c *PowerClient) FetchMenu(ctx context.Context, storeID string) (*RawMenu, error) {
	if menu, ok := c.menuCache.Get(storeID); ok {
		return menu, nil
	}

	v, err, _ := c.menuGroup.Do(storeID, func() (interface{}, error) {
		var menu RawMenu
		u := fmt.Sprintf("%s/store/%s/menu?lang=en&structured=true", c.apiBase, url.PathEscape(storeID))
		if err := c.getJSON(ctx, u, &menu); err != nil {
			return nil, fmt.Errorf("fetch menu for store %s: %w", storeID, err)
		}
		if !menu.Complete() {
			return nil, fmt.Errorf("%w: store %s", ErrIncompleteMenu, storeID)
		}
		c.menuCache.Add(storeID, &menu)
		return &menu, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RawMenu), nil
}

// ValidateOrder implements Client.
func (c *PowerClient) ValidateOrder(ctx context.Context, order *OrderPayload) (*OrderResult, error) {
	return c.submitOrder(ctx, "validate-order", order)
}

// PriceOrder implements Client.
func (c *PowerClient) PriceOrder(ctx context.Context, order *OrderPayload) (*OrderResult, error) {
	return c.submitOrder(ctx, "price-order", order)
}

// PlaceOrder implements Client.
func (c *PowerClient) PlaceOrder(ctx context.Context, order *OrderPayload) (*OrderResult, error) {
	return c.submitOrder(ctx, "place-order", order)
}

// Track implements Client.
func (c *PowerClient) Track(ctx context.Context, req TrackRequest) ([]TrackedOrder, error) {
	if req.OrderID != "" {
		var order TrackedOrder
		u := c.trackerBase + "/orders/" + url.PathEscape(req.OrderID)
		if err := c.getJSON(ctx, u, &order); err != nil {
			return nil, fmt.Errorf("track order %s: %w", req.OrderID, err)
		}
		return []TrackedOrder{order}, nil
	}

	q := url.Values{}
	q.Set("phonenumber", req.Phone)
	if req.StoreID != "" {
		q.Set("storeid", req.StoreID)
	}
	var orders []TrackedOrder
	if err := c.getJSON(ctx, c.trackerBase+"/orders?"+q.Encode(), &orders); err != nil {
		return nil, fmt.Errorf("track by phone: %w", err)
	}
	return orders, nil
}

// submitOrder posts the order envelope to a power endpoint and normalizes
// the response. Provider rejection is an OrderResult, not an error.
func (c *PowerClient) submitOrder(ctx context.Context, endpoint string, order *OrderPayload) (*OrderResult, error) {
	body, err := json.Marshal(map[string]interface{}{"Order": order})
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Referer", "https://order.dominos.com/en/pages/order/")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProvider, endpoint, err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrProvider, endpoint, httpResp.StatusCode, string(respBody))
	}

	var resp struct {
		Status      int          `json:"Status"`
		StatusItems []statusItem `json:"StatusItems"`
		Order       struct {
			Status               int          `json:"Status"`
			StatusItems          []statusItem `json:"StatusItems"`
			Amounts              Amounts      `json:"Amounts"`
			StoreOrderID         string       `json:"StoreOrderID"`
			EstimatedWaitMinutes string       `json:"EstimatedWaitMinutes"`
		} `json:"Order"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", ErrProvider, endpoint, err)
	}

	status := resp.Status
	if resp.Order.Status < status {
		status = resp.Order.Status
	}

	result := &OrderResult{
		Status:               status,
		Amounts:              resp.Order.Amounts,
		ProviderOrderID:      resp.Order.StoreOrderID,
		EstimatedWaitMinutes: resp.Order.EstimatedWaitMinutes,
	}
	if result.Rejected() {
		items := resp.Order.StatusItems
		if len(items) == 0 {
			items = resp.StatusItems
		}
		result.Reason = joinCodes(items)
		c.log.Debug().Str("endpoint", endpoint).Str("reason", result.Reason).Msg("order rejected by provider")
	}
	return result, nil
}

// getJSON issues a GET and decodes a JSON body into out.
func (c *PowerClient) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}
	return nil
}
