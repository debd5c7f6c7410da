package messages

// Published acknowledges a Publish made with acknowledge=true.
type Published struct {
	RequestID     int64
	PublicationID int64
}

func (m *Published) Kind() Kind { return KindPublished }

func (m *Published) Marshal() []any {
	return []any{int(KindPublished), m.RequestID, m.PublicationID}
}

func parsePublished(raw []any) (Message, error) {
	if err := checkLength("PUBLISHED", raw, 3, 3); err != nil {
		return nil, err
	}
	var errs []error

	requestID, err := validID(1, "request_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	publicationID, err := validID(2, "publication_id", raw[2])
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "PUBLISHED", Errors: errs}
	}
	return &Published{RequestID: requestID, PublicationID: publicationID}, nil
}
