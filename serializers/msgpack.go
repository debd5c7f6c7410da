package serializers

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/arcwamp/wampproto-go/messages"
)

// MsgpackSerializer encodes messages using MessagePack.
type MsgpackSerializer struct{}

func (MsgpackSerializer) ID() ID { return IDMsgpack }

func (MsgpackSerializer) Serialize(msg messages.Message) ([]byte, error) {
	return msgpack.Marshal(msg.Marshal())
}

func (MsgpackSerializer) Deserialize(data []byte) (messages.Message, error) {
	var raw []any
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return messages.Parse(raw)
}
