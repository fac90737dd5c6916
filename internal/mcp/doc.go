// Package mcp implements the Model Context Protocol server that exposes the
// ordering workflow to AI agents.
//
// The server speaks JSON-RPC 2.0 over stdio and registers one tool per
// workflow operation:
//
//   - findNearbyStores: resolve an address to orderable stores
//   - getMenu: fetch and categorize a store's menu
//   - createOrder: start an order for a store, service method, and customer
//   - addItemToOrder / removeItemFromOrder: mutate the item list
//   - getOrderState: recover an order's current state
//   - validateOrder / priceOrder / placeOrder: the checkout sequence
//   - trackOrder: milestone checklist by phone number or provider order id
//
// Handlers decode and shape-check arguments, dispatch to the ordering
// service, and encode results as indented JSON text. Local precondition
// failures and provider outages become JSON-RPC errors; provider business
// refusals (invalid order, failed pricing, declined card) come back as
// successful results with a "status" field of "invalid" or "failed" that
// the agent is expected to branch on.
//
// Logging goes to stderr; stdout is reserved for the protocol.
package mcp
