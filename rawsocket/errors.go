package rawsocket

import "fmt"

// FormatError reports malformed handshake or frame header bytes.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("rawsocket: %s", e.Msg)
}

func errFormat(format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}
