package messages

// Unsubscribed acknowledges an Unsubscribe.
type Unsubscribed struct {
	RequestID int64
}

func (m *Unsubscribed) Kind() Kind { return KindUnsubscribed }

func (m *Unsubscribed) Marshal() []any {
	return []any{int(KindUnsubscribed), m.RequestID}
}

func parseUnsubscribed(raw []any) (Message, error) {
	if err := checkLength("UNSUBSCRIBED", raw, 2, 2); err != nil {
		return nil, err
	}
	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		return nil, &ValidationError{Name: "UNSUBSCRIBED", Errors: []error{err}}
	}
	return &Unsubscribed{RequestID: requestID}, nil
}
