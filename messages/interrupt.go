package messages

// Interrupt requests cancellation of an outstanding Invocation.
type Interrupt struct {
	RequestID int64
	Options   map[string]any
}

func (m *Interrupt) Kind() Kind { return KindInterrupt }

func (m *Interrupt) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	return []any{int(KindInterrupt), m.RequestID, opts}
}

func parseInterrupt(raw []any) (Message, error) {
	if err := checkLength("INTERRUPT", raw, 3, 3); err != nil {
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

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "INTERRUPT", Errors: errs}
	}
	return &Interrupt{RequestID: requestID, Options: options}, nil
}
