package messages

// Unregister requests cancellation of a procedure registration.
type Unregister struct {
	RequestID      int64
	RegistrationID int64
}

func (m *Unregister) Kind() Kind { return KindUnregister }

func (m *Unregister) Marshal() []any {
	return []any{int(KindUnregister), m.RequestID, m.RegistrationID}
}

func parseUnregister(raw []any) (Message, error) {
	if err := checkLength("UNREGISTER", raw, 3, 3); err != nil {
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
		return nil, &ValidationError{Name: "UNREGISTER", Errors: errs}
	}
	return &Unregister{RequestID: requestID, RegistrationID: registrationID}, nil
}
