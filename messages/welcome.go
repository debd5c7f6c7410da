package messages

// Welcome is sent by the router to accept a session onto a realm.
type Welcome struct {
	SessionID  int64
	Roles      map[string]any
	AuthID     string
	AuthRole   string
	AuthMethod string
	AuthExtra  map[string]any
}

func (m *Welcome) Kind() Kind { return KindWelcome }

func (m *Welcome) Marshal() []any {
	details := map[string]any{"roles": m.Roles}
	if m.AuthID != "" {
		details["authid"] = m.AuthID
	}
	if m.AuthRole != "" {
		details["authrole"] = m.AuthRole
	}
	if m.AuthMethod != "" {
		details["authmethod"] = m.AuthMethod
	}
	if len(m.AuthExtra) > 0 {
		details["authextra"] = m.AuthExtra
	}
	return []any{int(KindWelcome), m.SessionID, details}
}

func parseWelcome(raw []any) (Message, error) {
	if err := checkLength("WELCOME", raw, 3, 3); err != nil {
		return nil, err
	}
	var errs []error

	sessionID, err := validID(1, "session_id", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	details, err := validMap(2, "details", raw[2])
	if err != nil {
		errs = append(errs, err)
		return nil, &ValidationError{Name: "WELCOME", Errors: errs}
	}

	roles, err := validRoles(2, details["roles"])
	if err != nil {
		errs = append(errs, err)
	}
	authid, err := validOptionalString(2, "authid", details["authid"])
	if err != nil {
		errs = append(errs, err)
	}
	authrole, err := validOptionalString(2, "authrole", details["authrole"])
	if err != nil {
		errs = append(errs, err)
	}
	authmethod, err := validOptionalString(2, "authmethod", details["authmethod"])
	if err != nil {
		errs = append(errs, err)
	}
	authextra, err := validOptionalMap(2, "authextra", details["authextra"])
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "WELCOME", Errors: errs}
	}
	return &Welcome{
		SessionID: sessionID, Roles: roles, AuthID: authid, AuthRole: authrole,
		AuthMethod: authmethod, AuthExtra: authextra,
	}, nil
}
