package serializers

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/arcwamp/wampproto-go/messages"
)

var mapType = reflect.TypeOf(map[string]any{})

// CBORSerializer encodes messages as CBOR, the Advanced Profile's preferred
// binary serialization for payload-passthrough carriage.
type CBORSerializer struct{}

func (CBORSerializer) ID() ID { return IDCBOR }

func (CBORSerializer) Serialize(msg messages.Message) ([]byte, error) {
	return cbor.Marshal(msg.Marshal())
}

func (CBORSerializer) Deserialize(data []byte) (messages.Message, error) {
	var raw []any
	dm, err := cbor.DecOptions{
		// Decode CBOR maps to string-keyed Go maps so the shared
		// messages validators never need to special-case CBOR's
		// native map[interface{}]interface{} representation.
		DefaultMapType: mapType,
	}.DecMode()
	if err != nil {
		return nil, err
	}
	if err := dm.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return messages.Parse(raw)
}
