package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
	"github.com/mfowlewebs/dominos-mcp/internal/ordering"
	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeOrderNotFound   = -32001 // No order with the given identifier
	ErrorCodeIncompleteMenu  = -32002 // Menu payload missing required sections
	ErrorCodePrecondition    = -32003 // Order lifecycle precondition not met
	ErrorCodeProviderFailure = -32004 // Remote provider unreachable or malformed
)

// handleFindNearbyStores handles the findNearbyStores tool invocation
func (s *Server) handleFindNearbyStores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	address, err := requireString(args, "address")
	if err != nil {
		return nil, err
	}
	method := types.ServiceMethod(getStringDefault(args, "serviceMethod", string(types.ServiceDelivery)))

	result, err := s.ordering.FindNearbyStores(ctx, address, method)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleGetMenu handles the getMenu tool invocation
func (s *Server) handleGetMenu(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	storeID, err := requireString(args, "storeId")
	if err != nil {
		return nil, err
	}

	menu, err := s.ordering.GetMenu(ctx, storeID)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(menu)), nil
}

// handleCreateOrder handles the createOrder tool invocation
func (s *Server) handleCreateOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	storeID, err := requireString(args, "storeId")
	if err != nil {
		return nil, err
	}
	orderType, err := requireString(args, "orderType")
	if err != nil {
		return nil, err
	}
	customerMap, ok := args["customer"].(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "customer parameter is required", map[string]interface{}{
			"param":  "customer",
			"reason": "missing or not an object",
		})
	}

	customer := types.Customer{
		FirstName: getStringDefault(customerMap, "firstName", ""),
		LastName:  getStringDefault(customerMap, "lastName", ""),
		Phone:     getStringDefault(customerMap, "phone", ""),
		Email:     getStringDefault(customerMap, "email", ""),
	}
	if addressMap, ok := customerMap["address"].(map[string]interface{}); ok {
		customer.Address = &types.Address{
			Street:     getStringDefault(addressMap, "street", ""),
			City:       getStringDefault(addressMap, "city", ""),
			Region:     getStringDefault(addressMap, "region", ""),
			PostalCode: getStringDefault(addressMap, "postalCode", ""),
		}
	}

	result, err := s.ordering.CreateOrder(ordering.CreateOrderInput{
		StoreID:  storeID,
		Method:   types.ServiceMethod(orderType),
		Customer: customer,
	})
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleAddItemToOrder handles the addItemToOrder tool invocation
func (s *Server) handleAddItemToOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	orderID, err := requireString(args, "orderId")
	if err != nil {
		return nil, err
	}
	itemMap, ok := args["item"].(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "item parameter is required", map[string]interface{}{
			"param":  "item",
			"reason": "missing or not an object",
		})
	}

	options, err := decodeOptions(itemMap["options"])
	if err != nil {
		return nil, err
	}

	result, err := s.ordering.AddItem(orderID, ordering.ItemInput{
		Code:     getStringDefault(itemMap, "code", ""),
		Options:  options,
		Quantity: getIntDefault(itemMap, "quantity", 0),
	})
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleRemoveItemFromOrder handles the removeItemFromOrder tool invocation
func (s *Server) handleRemoveItemFromOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	orderID, err := requireString(args, "orderId")
	if err != nil {
		return nil, err
	}
	index, ok := getInt(args, "itemIndex")
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "itemIndex parameter is required", map[string]interface{}{
			"param":  "itemIndex",
			"reason": "missing or not an integer",
		})
	}

	result, err := s.ordering.RemoveItem(orderID, index)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleGetOrderState handles the getOrderState tool invocation
func (s *Server) handleGetOrderState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	orderID, err := requireString(args, "orderId")
	if err != nil {
		return nil, err
	}

	result, err := s.ordering.OrderState(orderID)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleValidateOrder handles the validateOrder tool invocation
func (s *Server) handleValidateOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	orderID, err := requireString(args, "orderId")
	if err != nil {
		return nil, err
	}

	result, err := s.ordering.Validate(ctx, orderID)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handlePriceOrder handles the priceOrder tool invocation
func (s *Server) handlePriceOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	orderID, err := requireString(args, "orderId")
	if err != nil {
		return nil, err
	}

	result, err := s.ordering.Price(ctx, orderID)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handlePlaceOrder handles the placeOrder tool invocation
func (s *Server) handlePlaceOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	orderID, err := requireString(args, "orderId")
	if err != nil {
		return nil, err
	}
	paymentMap, ok := args["payment"].(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "payment parameter is required", map[string]interface{}{
			"param":  "payment",
			"reason": "missing or not an object",
		})
	}

	payment := types.Payment{
		Type:         types.PaymentType(getStringDefault(paymentMap, "type", "")),
		CardNumber:   getStringDefault(paymentMap, "cardNumber", ""),
		Expiration:   getStringDefault(paymentMap, "expiration", ""),
		SecurityCode: getStringDefault(paymentMap, "securityCode", ""),
		PostalCode:   getStringDefault(paymentMap, "postalCode", ""),
		TipAmount:    getFloatDefault(paymentMap, "tipAmount", 0),
	}

	result, err := s.ordering.Place(ctx, orderID, payment)
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleTrackOrder handles the trackOrder tool invocation
func (s *Server) handleTrackOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	phone, err := requireString(args, "phoneNumber")
	if err != nil {
		return nil, err
	}
	storeID, err := requireString(args, "storeId")
	if err != nil {
		return nil, err
	}

	result, err := s.ordering.Track(ctx, ordering.TrackInput{
		Phone:   phone,
		StoreID: storeID,
		OrderID: getStringDefault(args, "orderId", ""),
	})
	if err != nil {
		return nil, s.mcpErrorFor(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// Helper functions

// mcpErrorFor translates workflow errors into MCP protocol errors. Local
// precondition failures keep their human-readable reason; remote system
// failures surface as provider-failure codes.
func (s *Server) mcpErrorFor(err error) error {
	var code int
	switch {
	case errors.Is(err, ordering.ErrOrderNotFound):
		code = ErrorCodeOrderNotFound
	case errors.Is(err, commerce.ErrIncompleteMenu):
		code = ErrorCodeIncompleteMenu
	case errors.Is(err, commerce.ErrProvider):
		code = ErrorCodeProviderFailure
	case errors.Is(err, ordering.ErrNotPriced),
		errors.Is(err, ordering.ErrEmptyOrder),
		errors.Is(err, ordering.ErrItemIndexOutOfRange):
		code = ErrorCodePrecondition
	case errors.Is(err, ordering.ErrAddressRequired),
		errors.Is(err, ordering.ErrMissingCardFields),
		errors.Is(err, ordering.ErrBillingPostalRequired),
		errors.Is(err, ordering.ErrItemCodeRequired),
		errors.Is(err, ordering.ErrPhoneRequired),
		errors.Is(err, ordering.ErrAddressQueryRequired),
		errors.Is(err, types.ErrMissingFirstName),
		errors.Is(err, types.ErrMissingLastName),
		errors.Is(err, types.ErrMissingPhone),
		errors.Is(err, types.ErrInvalidServiceMethod),
		errors.Is(err, types.ErrInvalidPaymentType),
		errors.Is(err, types.ErrInvalidQuantity):
		code = ErrorCodeInvalidParams
	default:
		code = ErrorCodeInternalError
	}
	s.log.Debug().Int("code", code).Err(err).Msg("tool call failed")
	return newMCPError(code, err.Error(), nil)
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// arguments extracts the argument object from a tool call.
func arguments(request mcp.CallToolRequest) (map[string]interface{}, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	return args, nil
}

// requireString extracts a mandatory non-empty string parameter.
func requireString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key].(string)
	if !ok || val == "" {
		return "", newMCPError(ErrorCodeInvalidParams, key+" parameter is required", map[string]interface{}{
			"param":  key,
			"reason": "missing or empty",
		})
	}
	return val, nil
}

// decodeOptions shape-checks the customization options structure: topping
// code -> portion -> quantity level, all strings. Semantics are left to the
// provider's validate step.
func decodeOptions(raw interface{}) (types.ItemOptions, error) {
	if raw == nil {
		return nil, nil
	}
	outer, ok := raw.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "item.options must be an object", map[string]interface{}{
			"param": "item.options",
		})
	}

	options := make(types.ItemOptions, len(outer))
	for code, portionsRaw := range outer {
		portions, ok := portionsRaw.(map[string]interface{})
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "item.options values must be portion objects", map[string]interface{}{
				"param":   "item.options",
				"topping": code,
			})
		}
		decoded := make(map[string]string, len(portions))
		for portion, qtyRaw := range portions {
			qty, ok := qtyRaw.(string)
			if !ok {
				return nil, newMCPError(ErrorCodeInvalidParams, "item.options quantity levels must be strings", map[string]interface{}{
					"param":   "item.options",
					"topping": code,
					"portion": portion,
				})
			}
			decoded[portion] = qty
		}
		options[code] = decoded
	}
	return options, nil
}

// formatJSON formats a result as indented JSON
func formatJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := getInt(args, key); ok {
		return val
	}
	return defaultValue
}

// getInt extracts an integer parameter, accepting JSON's float64 numbers
func getInt(args map[string]interface{}, key string) (int, bool) {
	if val, ok := args[key].(float64); ok {
		return int(val), true
	}
	if val, ok := args[key].(int); ok {
		return val, true
	}
	return 0, false
}

// getFloatDefault extracts a number parameter with a default value
func getFloatDefault(args map[string]interface{}, key string, defaultValue float64) float64 {
	if val, ok := args[key].(float64); ok {
		return val
	}
	if val, ok := args[key].(int); ok {
		return float64(val)
	}
	return defaultValue
}
