package messages

// Invocation delivers a Call to the callee holding the matching registration.
type Invocation struct {
	RequestID      int64
	RegistrationID int64
	Details        map[string]any
	Args           []any
	Kwargs         map[string]any
	Payload        *Payload
}

func (m *Invocation) Kind() Kind { return KindInvocation }

func (m *Invocation) Marshal() []any {
	details := m.Details
	if details == nil {
		details = map[string]any{}
	}
	seq := []any{int(KindInvocation), m.RequestID, m.RegistrationID, details}
	if m.Payload != nil {
		details, args := withPayload(details, m.Payload)
		seq[3] = details
		return append(seq, args)
	}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseInvocation(raw []any) (Message, error) {
	if err := checkLength("INVOCATION", raw, 4, 6); err != nil {
		return nil, err
	}
	var errs []error

	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	registrationID, err := validID(2, "registration_id", raw[2])
	if err != nil {
		errs = append(errs, err)
	}
	details, err := validMap(3, "details", raw[3])
	if err != nil {
		errs = append(errs, err)
	}
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 4)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "INVOCATION", Errors: errs}
	}
	i := &Invocation{RequestID: requestID, RegistrationID: registrationID, Details: details, Args: args, Kwargs: kwargs}
	if payload, ok := extractPayload(details, args); ok {
		i.Payload = payload
		i.Args, i.Kwargs = nil, nil
	}
	return i, nil
}
