package messages

// Event delivers a published event to a subscriber.
type Event struct {
	SubscriptionID int64
	PublicationID  int64
	Details        map[string]any
	Args           []any
	Kwargs         map[string]any
	Payload        *Payload
}

func (m *Event) Kind() Kind { return KindEvent }

func (m *Event) Marshal() []any {
	details := m.Details
	if details == nil {
		details = map[string]any{}
	}
	seq := []any{int(KindEvent), m.SubscriptionID, m.PublicationID, details}
	if m.Payload != nil {
		details, args := withPayload(details, m.Payload)
		seq[3] = details
		return append(seq, args)
	}
	return marshalTrailingArgsKwargs(seq, m.Args, m.Kwargs)
}

func parseEvent(raw []any) (Message, error) {
	if err := checkLength("EVENT", raw, 4, 6); err != nil {
		return nil, err
	}
	var errs []error

	subscriptionID, err := validID(1, "subscription_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	publicationID, err := validID(2, "publication_id", raw[2])
	if err != nil {
		errs = append(errs, err)
	}
	details, err := validMap(3, "details", raw[3])
	if err != nil {
		errs = append(errs, err)
	}
	args, kwargs, aerrs := parseTrailingArgsKwargs(raw, 4)
	errs = append(errs, aerrs...)

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "EVENT", Errors: errs}
	}
	e := &Event{SubscriptionID: subscriptionID, PublicationID: publicationID, Details: details, Args: args, Kwargs: kwargs}
	if payload, ok := extractPayload(details, args); ok {
		e.Payload = payload
		e.Args, e.Kwargs = nil, nil
	}
	return e, nil
}
