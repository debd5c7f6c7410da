package messages

// Cancel requests cancellation of an outstanding Call.
type Cancel struct {
	RequestID int64
	Options   map[string]any
}

func (m *Cancel) Kind() Kind { return KindCancel }

func (m *Cancel) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	return []any{int(KindCancel), m.RequestID, opts}
}

func parseCancel(raw []any) (Message, error) {
	if err := checkLength("CANCEL", raw, 3, 3); err != nil {
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
		return nil, &ValidationError{Name: "CANCEL", Errors: errs}
	}
	return &Cancel{RequestID: requestID, Options: options}, nil
}
