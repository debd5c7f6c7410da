package messages

// Hello is sent by a client to initiate a session on a realm.
type Hello struct {
	Realm       string
	Roles       map[string]any
	AuthID      string
	AuthRole    string
	AuthMethods []string
	AuthExtra   map[string]any
}

func (m *Hello) Kind() Kind { return KindHello }

func (m *Hello) Marshal() []any {
	details := map[string]any{"roles": m.Roles}
	if m.AuthID != "" {
		details["authid"] = m.AuthID
	}
	if m.AuthRole != "" {
		details["authrole"] = m.AuthRole
	}
	if len(m.AuthMethods) > 0 {
		methods := make([]any, len(m.AuthMethods))
		for i, method := range m.AuthMethods {
			methods[i] = method
		}
		details["authmethods"] = methods
	}
	if len(m.AuthExtra) > 0 {
		details["authextra"] = m.AuthExtra
	}
	return []any{int(KindHello), m.Realm, details}
}

func parseHello(raw []any) (Message, error) {
	if err := checkLength("HELLO", raw, 3, 3); err != nil {
		return nil, err
	}
	var errs []error

	realm, err := validURI(1, "realm", raw[1])
	if err != nil {
		errs = append(errs, err)
	}
	details, err := validMap(2, "details", raw[2])
	if err != nil {
		errs = append(errs, err)
		return nil, &ValidationError{Name: "HELLO", Errors: errs}
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
	authmethods, err := validAuthMethods(2, details["authmethods"])
	if err != nil {
		errs = append(errs, err)
	}
	authextra, err := validOptionalMap(2, "authextra", details["authextra"])
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Name: "HELLO", Errors: errs}
	}
	return &Hello{
		Realm: realm, Roles: roles, AuthID: authid, AuthRole: authrole,
		AuthMethods: authmethods, AuthExtra: authextra,
	}, nil
}
