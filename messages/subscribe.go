package messages

// Subscribe requests a subscription to a topic.
type Subscribe struct {
	RequestID int64
	Options   map[string]any
	Topic     string
}

func (m *Subscribe) Kind() Kind { return KindSubscribe }

func (m *Subscribe) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	return []any{int(KindSubscribe), m.RequestID, opts, m.Topic}
}

func parseSubscribe(raw []any) (Message, error) {
	if err := checkLength("SUBSCRIBE", raw, 4, 4); err != nil {
		return nil, err
	}
	var errs []error

	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	options, err := validMap(2, "options", raw[2])
	if err != nil {
		errs = append(errs, err)
	}
	topic, err := validURI(3, "topic", raw[3])
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "SUBSCRIBE", Errors: errs}
	}
	return &Subscribe{RequestID: requestID, Options: options, Topic: topic}, nil
}
