// Package commerce is the integration with the remote pizza provider. It
// defines the narrow capability interface the workflow needs (store lookup,
// menu fetch, validate, price, place, track) and an HTTP client speaking the
// provider's "power" API.
//
// The provider is network-bound, slow, and fallible. Failures split two
// ways: a response the provider returned but rejected (Status < 0) is a
// business outcome the workflow reports to the caller, while transport
// errors and structurally incomplete payloads are system errors wrapping
// ErrProvider or ErrIncompleteMenu. Nothing in this package retries; every
// remote failure is surfaced once, immediately.
package commerce
