package messages

// Authenticate carries a client's response to a CHALLENGE.
type Authenticate struct {
	Signature string
	Extra     map[string]any
}

func (m *Authenticate) Kind() Kind { return KindAuthenticate }

func (m *Authenticate) Marshal() []any {
	extra := m.Extra
	if extra == nil {
		extra = map[string]any{}
	}
	return []any{int(KindAuthenticate), m.Signature, extra}
}

func parseAuthenticate(raw []any) (Message, error) {
	if err := checkLength("AUTHENTICATE", raw, 3, 3); err != nil {
		return nil, err
	}
	var errs []error

	signature, err := validString(1, "signature", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	extra, err := validMap(2, "extra", raw[2])
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "AUTHENTICATE", Errors: errs}
	}
	return &Authenticate{Signature: signature, Extra: extra}, nil
}
