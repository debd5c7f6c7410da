// Package metrics defines narrow, per-component instrumentation interfaces
// for the dealer, broker, session and joiner/acceptor packages, plus a
// no-op default and a Prometheus-backed implementation. Instrumentation is
// ambient: the protocol core calls these interfaces unconditionally, and
// an embedder that doesn't care wires in the no-ops.
package metrics
