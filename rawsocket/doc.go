// Package rawsocket provides pure encode/decode helpers for the WAMP
// RawSocket transport's handshake and per-message framing. It performs no
// I/O: the embedder reads/writes the bytes these functions produce and
// consume over whatever socket it owns.
package rawsocket
