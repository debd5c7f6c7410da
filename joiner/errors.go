package joiner

import "fmt"

// ProtocolError reports that a message arrived while the joiner was in a
// state that does not expect it.
type ProtocolError struct {
	State       State
	MessageKind string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("joiner: unexpected %s in state %s", e.MessageKind, e.State)
}

// ApplicationError is raised when the router aborts the join handshake.
// It carries the Abort's reason, args and kwargs back to the embedder.
type ApplicationError struct {
	Reason string
	Args   []any
	Kwargs map[string]any
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("joiner: join aborted: %s", e.Reason)
}
