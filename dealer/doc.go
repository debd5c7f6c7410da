// Package dealer implements the router-side RPC routing core: registering
// procedures, routing Call to the registered callee as Invocation, and
// routing the callee's Yield/Error back to the original caller as
// Result/Error, including progressive-call fragment coalescing.
package dealer
