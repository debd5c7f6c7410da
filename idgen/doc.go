// Package idgen generates WAMP session and scope identifiers: a session id
// is a single random draw from [1, 2^53], while registration/subscription/
// request/publication ids within a session are produced by a monotonic
// counter that wraps back to 1 after 2^53, never emitting 0.
package idgen
