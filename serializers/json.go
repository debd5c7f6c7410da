package serializers

import (
	"encoding/json"

	"github.com/arcwamp/wampproto-go/messages"
)

// JSONSerializer encodes messages using the stdlib JSON encoder, matching
// the JSON wire envelope convention used elsewhere in this codebase.
type JSONSerializer struct{}

func (JSONSerializer) ID() ID { return IDJSON }

func (JSONSerializer) Serialize(msg messages.Message) ([]byte, error) {
	return json.Marshal(msg.Marshal())
}

func (JSONSerializer) Deserialize(data []byte) (messages.Message, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return messages.Parse(raw)
}
