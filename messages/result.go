package messages

// Result carries the outcome of a Call back to the caller.
type Result struct {
	RequestID int64
	Details   map[string]any
	Args      []any
	Kwargs    map[string]any
	Payload   *Payload
}

func (m *Result) Kind() Kind { return KindResult }

func (m *Result) Marshal() []any {
	details := m.Details
	if details == nil {
		details = map[string]any{}
	}
	seq := []any{int(KindResult), m.RequestID, details}
	if m.Payload != nil {
		details, args := withPayload(details, m.Payload)
		seq[2] = details
		return append(seq, args)
	}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseResult(raw []any) (Message, error) {
	if err := checkLength("RESULT", raw, 3, 5); err != nil {
		return nil, err
	}
	var errs []error

	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	details, err := validMap(2, "details", raw[2])
	if err != nil {
		errs = append(errs, err)
	}
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 3)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "RESULT", Errors: errs}
	}
	r := &Result{RequestID: requestID, Details: details, Args: args, Kwargs: kwargs}
	if payload, ok := extractPayload(details, args); ok {
		r.Payload = payload
		r.Args, r.Kwargs = nil, nil
	}
	return r, nil
}
