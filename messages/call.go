package messages

// Call requests invocation of a remote procedure.
type Call struct {
	RequestID int64
	Options   map[string]any
	Procedure string
	Args      []any
	Kwargs    map[string]any
	Payload   *Payload
}

func (m *Call) Kind() Kind { return KindCall }

func (m *Call) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	seq := []any{int(KindCall), m.RequestID, opts, m.Procedure}
	if m.Payload != nil {
		opts, args := withPayload(opts, m.Payload)
		seq[2] = opts
		return append(seq, args)
	}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseCall(raw []any) (Message, error) {
	if err := checkLength("CALL", raw, 4, 6); err != nil {
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
	procedure, err := validURI(3, "procedure", raw[3])
	if err != nil {
		errs = append(errs, err)
	}
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 4)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "CALL", Errors: errs}
	}
	c := &Call{RequestID: requestID, Options: options, Procedure: procedure, Args: args, Kwargs: kwargs}
	if payload, ok := extractPayload(options, args); ok {
		c.Payload = payload
		c.Args, c.Kwargs = nil, nil
	}
	return c, nil
}
