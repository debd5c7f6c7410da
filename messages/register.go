package messages

// Register requests registration of a procedure for invocation.
type Register struct {
	RequestID int64
	Options   map[string]any
	Procedure string
}

func (m *Register) Kind() Kind { return KindRegister }

func (m *Register) Marshal() []any {
	opts := m.Options
	if opts == nil {
		opts = map[string]any{}
	}
	return []any{int(KindRegister), m.RequestID, opts, m.Procedure}
}

func parseRegister(raw []any) (Message, error) {
	if err := checkLength("REGISTER", raw, 4, 4); err != nil {
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

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "REGISTER", Errors: errs}
	}
	return &Register{RequestID: requestID, Options: options, Procedure: procedure}, nil
}
