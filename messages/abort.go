package messages

// Abort terminates a session attempt before it reaches WELCOME, or ends an
// established session abruptly.
type Abort struct {
	Details map[string]any
	Reason  string
	Args    []any
	Kwargs  map[string]any
}

func (m *Abort) Kind() Kind { return KindAbort }

func (m *Abort) Marshal() []any {
	details := m.Details
	if details == nil {
		details = map[string]any{}
	}
	seq := []any{int(KindAbort), details, m.Reason}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseAbort(raw []any) (Message, error) {
	if err := checkLength("ABORT", raw, 3, 5); err != nil {
		return nil, err
	}
	var errs []error

	details, err := validMap(1, "details", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	reason, err := validURI(2, "reason", raw[2])
	if err != nil {
		errs = append(errs, err)
	}
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 3)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "ABORT", Errors: errs}
	}
	return &Abort{Details: details, Reason: reason, Args: args, Kwargs: kwargs}, nil
}
