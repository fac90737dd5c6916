// Package types defines the shared domain model for the ordering workflow:
// stores, menus, the order aggregate, customers, payments, and the sentinel
// errors used across packages.
//
// Everything here is plain data. Behavior lives in internal/ordering; these
// types only carry state between the session store, the workflow operations,
// and the MCP tool layer.
package types
