package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Max is the largest identifier WAMP permits: 2^53, the largest integer a
// JavaScript double can represent exactly.
const Max = int64(1) << 53

// NewSessionID draws a single cryptographically random session identifier
// in [1, Max]. Callers that need to detect collisions across the realm's
// existing sessions own that check; this function only produces the draw.
func NewSessionID() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(Max))
	if err != nil {
		panic(fmt.Errorf("idgen: crypto/rand failed: %w", err))
	}
	return n.Int64() + 1
}

// Scope is a monotonic identifier generator for one session's registration,
// subscription, request and publication ids. It is not safe for concurrent
// use; a Session that needs one from multiple goroutines must serialize
// access itself, consistent with the sans-I/O no-internal-locking rule.
type Scope struct {
	next int64
}

// NewScope returns a Scope whose first NextID() call returns 1.
func NewScope() *Scope {
	return &Scope{next: 0}
}

// NextID returns the next identifier in the scope, wrapping back to 1 once
// the counter would otherwise exceed Max.
func (s *Scope) NextID() int64 {
	if s.next >= Max {
		s.next = 0
	}
	s.next++
	return s.next
}
