package messages

// Publish requests that an event be published to a topic.
type Publish struct {
	RequestID int64
	Options   map[string]any
	Topic     string
	Args      []any
	Kwargs    map[string]any
	Payload   *Payload
}

func (m *Publish) Kind() Kind { return KindPublish }

func (m *Publish) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	seq := []any{int(KindPublish), m.RequestID, opts, m.Topic}
	if m.Payload != nil {
		opts, args := withPayload(opts, m.Payload)
		seq[2] = opts
		return append(seq, args)
	}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parsePublish(raw []any) (Message, error) {
	if err := checkLength("PUBLISH", raw, 4, 6); err != nil {
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
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 4)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "PUBLISH", Errors: errs}
	}
	p := &Publish{RequestID: requestID, Options: options, Topic: topic, Args: args, Kwargs: kwargs}
	if payload, ok := extractPayload(options, args); ok {
		p.Payload = payload
		p.Args, p.Kwargs = nil, nil
	}
	return p, nil
}
