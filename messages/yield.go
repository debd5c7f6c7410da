package messages

// Yield carries a callee's answer to an Invocation back to the dealer.
type Yield struct {
	RequestID int64
	Options   map[string]any
	Args      []any
	Kwargs    map[string]any
	Payload   *Payload
}

func (m *Yield) Kind() Kind { return KindYield }

func (m *Yield) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	seq := []any{int(KindYield), m.RequestID, opts}
	if m.Payload != nil {
		opts, args := withPayload(opts, m.Payload)
		seq[2] = opts
		return append(seq, args)
	}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseYield(raw []any) (Message, error) {
	if err := checkLength("YIELD", raw, 3, 5); err != nil {
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
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 3)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "YIELD", Errors: errs}
	}
	y := &Yield{RequestID: requestID, Options: options, Args: args, Kwargs: kwargs}
	if payload, ok := extractPayload(options, args); ok {
		y.Payload = payload
		y.Args, y.Kwargs = nil, nil
	}
	return y, nil
}
