package messages

// Registered acknowledges a Register, returning the new registration id.
type Registered struct {
	RequestID      int64
	RegistrationID int64
}

func (m *Registered) Kind() Kind { return KindRegistered }

func (m *Registered) Marshal() []any {
	return []any{int(KindRegistered), m.RequestID, m.RegistrationID}
}

func parseRegistered(raw []any) (Message, error) {
	if err := checkLength("REGISTERED", raw, 3, 3); err != nil {
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

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "REGISTERED", Errors: errs}
	}
	return &Registered{RequestID: requestID, RegistrationID: registrationID}, nil
}
