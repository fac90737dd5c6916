// Package ordering implements the workflow operations: one operation per
// lifecycle step, each reading and writing the session store and calling the
// remote commerce client.
//
// The order lifecycle is caller-driven:
//
//	create → add/remove items → validate → price → place
//
// with tracking as an independent query correlated by phone number, not by
// local order id. Preconditions at each transition are enforced here, before
// any remote call:
//
//   - delivery orders require a customer address at creation
//   - validate and price require an existing order (validate also a
//     non-empty one)
//   - place requires a prior successful pricing, full card fields for
//     credit, and a billing postal code for carryout credit
//
// Remote business outcomes (validation rejected, pricing rejected, payment
// declined) are returned as results carrying a failed/invalid status and the
// provider's reason, not as errors; the caller is expected to branch on the
// status. Remote system failures and local precondition failures are
// returned as errors.
package ordering
