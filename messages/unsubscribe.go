package messages

// Unsubscribe requests cancellation of a subscription.
type Unsubscribe struct {
	RequestID      int64
	SubscriptionID int64
}

func (m *Unsubscribe) Kind() Kind { return KindUnsubscribe }

func (m *Unsubscribe) Marshal() []any {
	return []any{int(KindUnsubscribe), m.RequestID, m.SubscriptionID}
}

func parseUnsubscribe(raw []any) (Message, error) {
	if err := checkLength("UNSUBSCRIBE", raw, 3, 3); err != nil {
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
		return nil, &ValidationError{Name: "UNSUBSCRIBE", Errors: errs}
	}
	return &Unsubscribe{RequestID: requestID, SubscriptionID: subscriptionID}, nil
}
