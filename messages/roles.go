package messages

// Client and router role names as carried in HELLO/WELCOME "roles" details.
const (
	RoleCaller     = "caller"
	RoleCallee     = "callee"
	RolePublisher  = "publisher"
	RoleSubscriber = "subscriber"

	RoleDealer = "dealer"
	RoleBroker = "broker"
)

// ClientRoles and RouterRoles enumerate the role names a peer of that kind
// may declare; used only for documentation and optional strict validation,
// never to reject an otherwise well-formed roles dictionary, since the
// Advanced Profile regularly adds new feature flags underneath a role.
var ClientRoles = []string{RoleCaller, RoleCallee, RolePublisher, RoleSubscriber}
var RouterRoles = []string{RoleDealer, RoleBroker}
