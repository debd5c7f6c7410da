package dealer

import "fmt"

// ProtocolError reports a dealer operation invoked in a way the dealer's
// state does not support (e.g. an unknown session, an unsupported message).
type ProtocolError struct {
	Op  string
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("dealer: %s: %s", e.Op, e.Msg)
}
