// Package session implements the session store: the process-lifetime owner
// of all workflow state shared between tool calls (candidate stores, the
// selected store, the last fetched menu, and every order aggregate).
//
// The store is the only shared mutable resource in the server. Workflow
// operations read an order, mutate their copy, and write it back through
// UpdateOrder before returning; no caller retains a live reference into the
// store. State is memory-resident and lost on process exit.
package session
