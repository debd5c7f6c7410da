package serializers

import "github.com/arcwamp/wampproto-go/messages"

// ID identifies a serializer on the wire, as negotiated by the transport
// (subprotocol name or rawsocket handshake byte).
type ID int

const (
	IDJSON    ID = 1
	IDMsgpack ID = 2
	IDCBOR    ID = 3
)

func (id ID) String() string {
	switch id {
	case IDJSON:
		return "json"
	case IDMsgpack:
		return "msgpack"
	case IDCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// Serializer encodes a parsed message's positional wire sequence to bytes,
// and decodes bytes back into the same shape messages.Parse expects.
type Serializer interface {
	ID() ID
	Serialize(msg messages.Message) ([]byte, error)
	Deserialize(data []byte) (messages.Message, error)
}

// ByID returns the built-in Serializer registered for id, or false if id is
// not one of the three negotiated wire formats.
func ByID(id ID) (Serializer, bool) {
	switch id {
	case IDJSON:
		return JSONSerializer{}, true
	case IDMsgpack:
		return MsgpackSerializer{}, true
	case IDCBOR:
		return CBORSerializer{}, true
	default:
		return nil, false
	}
}
