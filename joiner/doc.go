// Package joiner implements the client side of the WAMP join handshake: a
// small state machine that sends Hello, answers Challenge via a
// ClientAuthenticator, and settles into a joined session on Welcome.
package joiner
