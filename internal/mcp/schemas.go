package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// optionsSchema documents the customization options structure: topping code
// to portion key to quantity level. It is passed through to the provider
// without semantic validation.
func optionsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"description": "Customization options: topping code -> portion (\"1/1\" whole, \"1/2\"/\"2/2\" halves) " +
			"-> quantity level (\"0\" none, \"1\" normal, \"2\" double). Example: {\"P\": {\"1/2\": \"1.5\"}}",
		"additionalProperties": map[string]interface{}{
			"type": "object",
			"additionalProperties": map[string]interface{}{
				"type": "string",
			},
		},
	}
}

// findNearbyStoresTool returns the tool definition for findNearbyStores
func findNearbyStoresTool() mcp.Tool {
	return mcp.Tool{
		Name:        "findNearbyStores",
		Description: "Find open, online-orderable stores near an address, sorted by distance",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"address": map[string]interface{}{
					"type":        "string",
					"description": "Free-text street address to search near",
				},
				"serviceMethod": map[string]interface{}{
					"type":        "string",
					"description": "Intended service method for the search",
					"enum":        []string{"Delivery", "Carryout"},
					"default":     "Delivery",
				},
			},
			Required: []string{"address"},
		},
	}
}

// getMenuTool returns the tool definition for getMenu
func getMenuTool() mcp.Tool {
	return mcp.Tool{
		Name:        "getMenu",
		Description: "Fetch a store's menu, grouped by category with per-variant prices. Also selects the store for this session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"storeId": map[string]interface{}{
					"type":        "string",
					"description": "Store identifier (from findNearbyStores, or a known id)",
				},
			},
			Required: []string{"storeId"},
		},
	}
}

// createOrderTool returns the tool definition for createOrder
func createOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "createOrder",
		Description: "Create a new empty order for a store. Delivery orders require a customer address. No provider call is made.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"storeId": map[string]interface{}{
					"type":        "string",
					"description": "Store to order from",
				},
				"orderType": map[string]interface{}{
					"type":        "string",
					"description": "Service method for the order",
					"enum":        []string{"Delivery", "Carryout"},
				},
				"customer": map[string]interface{}{
					"type":        "object",
					"description": "Customer profile",
					"properties": map[string]interface{}{
						"firstName": map[string]interface{}{"type": "string"},
						"lastName":  map[string]interface{}{"type": "string"},
						"phone":     map[string]interface{}{"type": "string"},
						"email":     map[string]interface{}{"type": "string"},
						"address": map[string]interface{}{
							"type":        "object",
							"description": "Required for Delivery; used as billing address for Carryout card payments",
							"properties": map[string]interface{}{
								"street":     map[string]interface{}{"type": "string"},
								"city":       map[string]interface{}{"type": "string"},
								"region":     map[string]interface{}{"type": "string"},
								"postalCode": map[string]interface{}{"type": "string"},
							},
						},
					},
					"required": []string{"firstName", "lastName", "phone"},
				},
			},
			Required: []string{"storeId", "orderType", "customer"},
		},
	}
}

// addItemToOrderTool returns the tool definition for addItemToOrder
func addItemToOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "addItemToOrder",
		Description: "Append one item to an order. Item semantics are validated later by validateOrder, not here.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Order identifier from createOrder",
				},
				"item": map[string]interface{}{
					"type":        "object",
					"description": "Item descriptor",
					"properties": map[string]interface{}{
						"code": map[string]interface{}{
							"type":        "string",
							"description": "Catalog variant code from the menu (e.g. 16SCREEN)",
						},
						"options": optionsSchema(),
						"quantity": map[string]interface{}{
							"type":        "integer",
							"description": "Count of this item",
							"default":     1,
							"minimum":     1,
						},
					},
					"required": []string{"code"},
				},
			},
			Required: []string{"orderId", "item"},
		},
	}
}

// removeItemFromOrderTool returns the tool definition for removeItemFromOrder
func removeItemFromOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "removeItemFromOrder",
		Description: "Remove one item from an order by its zero-based index",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Order identifier",
				},
				"itemIndex": map[string]interface{}{
					"type":        "integer",
					"description": "Zero-based index into the order's item list",
					"minimum":     0,
				},
			},
			Required: []string{"orderId", "itemIndex"},
		},
	}
}

// getOrderStateTool returns the tool definition for getOrderState
func getOrderStateTool() mcp.Tool {
	return mcp.Tool{
		Name:        "getOrderState",
		Description: "Read an order's current state (store, method, customer, items, pricing, placement) without changing it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Order identifier",
				},
			},
			Required: []string{"orderId"},
		},
	}
}

// validateOrderTool returns the tool definition for validateOrder
func validateOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "validateOrder",
		Description: "Validate the order with the provider. An invalid order is reported in the result status, not as an error.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Order identifier",
				},
			},
			Required: []string{"orderId"},
		},
	}
}

// priceOrderTool returns the tool definition for priceOrder
func priceOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "priceOrder",
		Description: "Price the order with the provider: subtotal, tax, total, and delivery fee for delivery orders",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Order identifier",
				},
			},
			Required: []string{"orderId"},
		},
	}
}

// placeOrderTool returns the tool definition for placeOrder
func placeOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "placeOrder",
		Description: "Place a priced order with a single payment. A declined payment is reported in the result status, not as an error.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Order identifier; the order must already be priced",
				},
				"payment": map[string]interface{}{
					"type":        "object",
					"description": "Payment instruction",
					"properties": map[string]interface{}{
						"type": map[string]interface{}{
							"type": "string",
							"enum": []string{"cash", "credit"},
						},
						"cardNumber": map[string]interface{}{
							"type":        "string",
							"description": "Required for credit",
						},
						"expiration": map[string]interface{}{
							"type":        "string",
							"description": "Required for credit (MMYY)",
						},
						"securityCode": map[string]interface{}{
							"type":        "string",
							"description": "Required for credit",
						},
						"postalCode": map[string]interface{}{
							"type":        "string",
							"description": "Billing postal code; required for carryout credit payments",
						},
						"tipAmount": map[string]interface{}{
							"type":        "number",
							"description": "Gratuity; honored for delivery orders only",
						},
					},
					"required": []string{"type"},
				},
			},
			Required: []string{"orderId", "payment"},
		},
	}
}

// trackOrderTool returns the tool definition for trackOrder
func trackOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "trackOrder",
		Description: "Track order progress by phone number and store, or directly by a known provider order id",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"phoneNumber": map[string]interface{}{
					"type":        "string",
					"description": "Customer phone number; normalized to digits before the query",
				},
				"storeId": map[string]interface{}{
					"type":        "string",
					"description": "Store the order was placed with",
				},
				"orderId": map[string]interface{}{
					"type":        "string",
					"description": "Provider order id for direct tracking (optional)",
				},
			},
			Required: []string{"phoneNumber", "storeId"},
		},
	}
}
