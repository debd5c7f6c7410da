package messages

// PayloadSerializer identifies the encoding of an opaque passthrough payload
// carried in place of Args/Kwargs, per the payload-passthrough design note.
type PayloadSerializer int

const (
	PayloadSerializerRaw     PayloadSerializer = 0
	PayloadSerializerJSON    PayloadSerializer = 1
	PayloadSerializerMsgpack PayloadSerializer = 2
	PayloadSerializerCBOR    PayloadSerializer = 3
)

// payloadOptionKey is the options/details key used to flag that a message's
// Args slot holds a single opaque payload rather than normal positional
// arguments.
const payloadOptionKey = "x_payload_serializer"

// Payload is the opaque-body carried by a message when end-to-end payload
// passthrough is in effect: the router never inspects Args/Kwargs, only
// forwards the encoded bytes under the declared serializer id.
type Payload struct {
	Serializer PayloadSerializer
	Data       []byte
}

// withPayload injects the x_payload_serializer marker into opts and returns
// the single-element args slice wrapping the opaque payload bytes, mirroring
// how a caller opts into passthrough carriage for one call.
func withPayload(opts map[string]any, p *Payload) (map[string]any, []any) {
	if p == nil {
		return opts, nil
	}
	if opts == nil {
		opts = map[string]any{}
	}
	opts[payloadOptionKey] = int(p.Serializer)
	return opts, []any{p.Data}
}

// extractPayload reports whether opts carries a payload-passthrough marker,
// and if so decodes the wrapped payload out of args.
func extractPayload(opts map[string]any, args []any) (*Payload, bool) {
	if opts == nil {
		return nil, false
	}
	raw, ok := opts[payloadOptionKey]
	if !ok {
		return nil, false
	}
	ser, ok := asInt(raw)
	if !ok || len(args) != 1 {
		return nil, false
	}
	data, ok := args[0].([]byte)
	if !ok {
		if s, ok := args[0].(string); ok {
			data = []byte(s)
		} else {
			return nil, false
		}
	}
	return &Payload{Serializer: PayloadSerializer(ser), Data: data}, true
}
