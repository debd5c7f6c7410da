package messages

// Unregistered acknowledges an Unregister.
type Unregistered struct {
	RequestID int64
}

func (m *Unregistered) Kind() Kind { return KindUnregistered }

func (m *Unregistered) Marshal() []any {
	return []any{int(KindUnregistered), m.RequestID}
}

func parseUnregistered(raw []any) (Message, error) {
	if err := checkLength("UNREGISTERED", raw, 2, 2); err != nil {
		return nil, err
	}
	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		return nil, &ValidationError{Name: "UNREGISTERED", Errors: []error{err}}
	}
	return &Unregistered{RequestID: requestID}, nil
}
