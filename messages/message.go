package messages

// Kind is the wire type tag shared by every message variant.
type Kind int

// Wire type codes, per the WAMP Basic+Advanced Profile.
const (
	KindHello         Kind = 1
	KindWelcome       Kind = 2
	KindAbort         Kind = 3
	KindChallenge     Kind = 4
	KindAuthenticate  Kind = 5
	KindGoodbye       Kind = 6
	KindError         Kind = 8
	KindPublish       Kind = 16
	KindPublished     Kind = 17
	KindSubscribe     Kind = 32
	KindSubscribed    Kind = 33
	KindUnsubscribe   Kind = 34
	KindUnsubscribed  Kind = 35
	KindEvent         Kind = 36
	KindCall          Kind = 48
	KindCancel        Kind = 49
	KindResult        Kind = 50
	KindRegister      Kind = 64
	KindRegistered    Kind = 65
	KindUnregister    Kind = 66
	KindUnregistered  Kind = 67
	KindInvocation    Kind = 68
	KindInterrupt     Kind = 69
	KindYield         Kind = 70
)

// names maps each Kind to its canonical text name, used in error messages.
var names = map[Kind]string{
	KindHello:        "HELLO",
	KindWelcome:      "WELCOME",
	KindAbort:        "ABORT",
	KindChallenge:    "CHALLENGE",
	KindAuthenticate: "AUTHENTICATE",
	KindGoodbye:      "GOODBYE",
	KindError:        "ERROR",
	KindPublish:      "PUBLISH",
	KindPublished:    "PUBLISHED",
	KindSubscribe:    "SUBSCRIBE",
	KindSubscribed:   "SUBSCRIBED",
	KindUnsubscribe:  "UNSUBSCRIBE",
	KindUnsubscribed: "UNSUBSCRIBED",
	KindEvent:        "EVENT",
	KindCall:         "CALL",
	KindCancel:       "CANCEL",
	KindResult:       "RESULT",
	KindRegister:     "REGISTER",
	KindRegistered:   "REGISTERED",
	KindUnregister:   "UNREGISTER",
	KindUnregistered: "UNREGISTERED",
	KindInvocation:   "INVOCATION",
	KindInterrupt:    "INTERRUPT",
	KindYield:        "YIELD",
}

// String returns the canonical text name for k, or "UNKNOWN" if k is not a
// recognized message kind.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// Message is implemented by every WAMP message variant.
type Message interface {
	// Kind returns the wire type tag for this variant.
	Kind() Kind
	// Marshal returns the positional wire sequence [TYPE, ...] for this
	// message, omitting absent optional trailing fields.
	Marshal() []any
}

// Parse dispatches a raw positional wire sequence to the matching variant's
// parser based on the leading integer tag. An unrecognized tag or malformed
// leading element is a *ValidationError.
func Parse(raw []any) (Message, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Name: "MESSAGE", Errors: []error{errInvalidShape("empty message")}}
	}

	tag, ok := asInt(raw[0])
	if !ok {
		return nil, &ValidationError{Name: "MESSAGE", Errors: []error{errInvalidShape("leading element must be an integer type tag")}}
	}

	switch Kind(tag) {
	case KindHello:
		return parseHello(raw)
	case KindWelcome:
		return parseWelcome(raw)
	case KindAbort:
		return parseAbort(raw)
	case KindChallenge:
		return parseChallenge(raw)
	case KindAuthenticate:
		return parseAuthenticate(raw)
	case KindGoodbye:
		return parseGoodbye(raw)
	case KindError:
		return parseError(raw)
	case KindPublish:
		return parsePublish(raw)
	case KindPublished:
		return parsePublished(raw)
	case KindSubscribe:
		return parseSubscribe(raw)
	case KindSubscribed:
		return parseSubscribed(raw)
	case KindUnsubscribe:
		return parseUnsubscribe(raw)
	case KindUnsubscribed:
		return parseUnsubscribed(raw)
	case KindEvent:
		return parseEvent(raw)
	case KindCall:
		return parseCall(raw)
	case KindCancel:
		return parseCancel(raw)
	case KindResult:
		return parseResult(raw)
	case KindRegister:
		return parseRegister(raw)
	case KindRegistered:
		return parseRegistered(raw)
	case KindUnregister:
		return parseUnregister(raw)
	case KindUnregistered:
		return parseUnregistered(raw)
	case KindInvocation:
		return parseInvocation(raw)
	case KindInterrupt:
		return parseInterrupt(raw)
	case KindYield:
		return parseYield(raw)
	default:
		return nil, &ValidationError{Name: "MESSAGE", Errors: []error{errInvalidShape("unknown message type tag")}}
	}
}
