package messages

// Fields is a neutral record with one slot for each field a wire message can
// carry. The per-kind parse functions in this package do not fill it in:
// they validate each index and build the message struct directly.
type Fields struct {
	RequestID      int64
	SessionID      int64
	RegistrationID int64
	SubscriptionID int64
	PublicationID  int64

	Realm string
	URI   string
	Topic string
	Reason string

	Args   []any
	Kwargs map[string]any

	Options map[string]any
	Details map[string]any
	Extra   map[string]any

	Roles map[string]any

	AuthID      string
	AuthRole    string
	AuthMethod  string
	AuthMethods []string
	AuthExtra   map[string]any

	Signature string

	// MessageType is the ERROR message's "original message type" field.
	MessageType int64
}
