package metrics

// DealerMetrics observes RPC routing events for one realm's dealer.
type DealerMetrics interface {
	Registered()
	Unregistered()
	CallRouted()
	CallErrored()
	SessionRemoved()
}

// BrokerMetrics observes pub-sub routing events for one realm's broker.
type BrokerMetrics interface {
	Subscribed()
	Unsubscribed()
	Published(recipients int)
	SessionRemoved()
}

// SessionMetrics observes client-side request/response correlation events.
type SessionMetrics interface {
	RequestSent(kind string)
	ResponseReceived(kind string)
	ProtocolErrorObserved()
}

// JoinerMetrics observes handshake outcomes for the client-side Joiner.
type JoinerMetrics interface {
	Joined()
	Aborted(reason string)
}

// AcceptorMetrics observes handshake outcomes for the router-side Acceptor.
type AcceptorMetrics interface {
	Welcomed(authMethod string)
	Aborted(reason string)
	ChallengeSent(authMethod string)
}
