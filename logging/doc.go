// Package logging provides the embedder-facing logger used by the realm
// package for lifecycle events (realm created, realm evicted). The protocol
// core itself never logs.
package logging
