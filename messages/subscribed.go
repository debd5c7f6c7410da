package messages

// Subscribed acknowledges a Subscribe, returning the new subscription id.
type Subscribed struct {
	RequestID      int64
	SubscriptionID int64
}

func (m *Subscribed) Kind() Kind { return KindSubscribed }

func (m *Subscribed) Marshal() []any {
	return []any{int(KindSubscribed), m.RequestID, m.SubscriptionID}
}

func parseSubscribed(raw []any) (Message, error) {
	if err := checkLength("SUBSCRIBED", raw, 3, 3); err != nil {
		return nil, err
	}
	var errs []error

	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	subscriptionID, err := validID(2, "subscription_id", raw[2])
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "SUBSCRIBED", Errors: errs}
	}
	return &Subscribed{RequestID: requestID, SubscriptionID: subscriptionID}, nil
}
