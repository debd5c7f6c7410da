package messages

// Error reports that a previously sent request could not be fulfilled.
type Error struct {
	MessageType Kind
	RequestID   int64
	Details     map[string]any
	URI         string
	Args        []any
	Kwargs      map[string]any
}

func (m *Error) Kind() Kind { return KindError }

func (m *Error) Marshal() []any {
	details := m.Details
	if details == nil {
		details = map[string]any{}
	}
	seq := []any{int(KindError), int(m.MessageType), m.RequestID, details, m.URI}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseError(raw []any) (Message, error) {
	if err := checkLength("ERROR", raw, 5, 7); err != nil {
		return nil, err
	}
	var errs []error

	msgType, err := validID(1, "message_type", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	requestID, err := validID(2, "request_id", raw[2])
	if err != nil {
		errs = append(errs, err)
	}
	details, err := validMap(3, "details", raw[3])
	if err != nil {
		errs = append(errs, err)
	}
	uri, err := validURI(4, "error", raw[4])
	if err != nil {
		errs = append(errs, err)
	}
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 5)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "ERROR", Errors: errs}
	}
	return &Error{
		MessageType: Kind(msgType), RequestID: requestID, Details: details,
		URI: uri, Args: args, Kwargs: kwargs,
	}, nil
}
