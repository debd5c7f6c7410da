package acceptor

import "fmt"

// ProtocolError reports that a message arrived while the acceptor was in a
// state that does not expect it.
type ProtocolError struct {
	State       State
	MessageKind string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("acceptor: unexpected %s in state %s", e.MessageKind, e.State)
}
