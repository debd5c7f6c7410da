package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusDealerMetrics records dealer events as Prometheus counters.
// Register it with a prometheus.Registerer once per process; every realm's
// Dealer can share the same instance since the counters carry no
// realm/session labels by default.
type PrometheusDealerMetrics struct {
	registered     prometheus.Counter
	unregistered   prometheus.Counter
	callRouted     prometheus.Counter
	callErrored    prometheus.Counter
	sessionRemoved prometheus.Counter
}

// NewPrometheusDealerMetrics builds and registers the dealer counters
// against reg. Registration failures (e.g. duplicate registration on a
// shared registerer) are reported to the caller rather than panicking, so
// the embedder can decide whether that's fatal.
func NewPrometheusDealerMetrics(reg prometheus.Registerer) (*PrometheusDealerMetrics, error) {
	m := &PrometheusDealerMetrics{
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_dealer_registrations_total",
			Help: "Total number of successful procedure registrations.",
		}),
		unregistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_dealer_unregistrations_total",
			Help: "Total number of procedure unregistrations.",
		}),
		callRouted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_dealer_calls_routed_total",
			Help: "Total number of calls routed to a registered callee.",
		}),
		callErrored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_dealer_call_errors_total",
			Help: "Total number of calls that errored (no such procedure, callee error).",
		}),
		sessionRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_dealer_sessions_removed_total",
			Help: "Total number of sessions removed from the dealer.",
		}),
	}
	for _, c := range []prometheus.Collector{m.registered, m.unregistered, m.callRouted, m.callErrored, m.sessionRemoved} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusDealerMetrics) Registered()     { m.registered.Inc() }
func (m *PrometheusDealerMetrics) Unregistered()   { m.unregistered.Inc() }
func (m *PrometheusDealerMetrics) CallRouted()     { m.callRouted.Inc() }
func (m *PrometheusDealerMetrics) CallErrored()    { m.callErrored.Inc() }
func (m *PrometheusDealerMetrics) SessionRemoved() { m.sessionRemoved.Inc() }

// PrometheusBrokerMetrics records broker events as Prometheus counters.
type PrometheusBrokerMetrics struct {
	subscribed     prometheus.Counter
	unsubscribed   prometheus.Counter
	published      prometheus.Counter
	eventsSent     prometheus.Counter
	sessionRemoved prometheus.Counter
}

// NewPrometheusBrokerMetrics builds and registers the broker counters
// against reg.
func NewPrometheusBrokerMetrics(reg prometheus.Registerer) (*PrometheusBrokerMetrics, error) {
	m := &PrometheusBrokerMetrics{
		subscribed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_broker_subscriptions_total",
			Help: "Total number of successful topic subscriptions.",
		}),
		unsubscribed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_broker_unsubscriptions_total",
			Help: "Total number of topic unsubscriptions.",
		}),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_broker_publications_total",
			Help: "Total number of publications accepted by the broker.",
		}),
		eventsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_broker_events_sent_total",
			Help: "Total number of Event messages fanned out to subscribers.",
		}),
		sessionRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wamp_broker_sessions_removed_total",
			Help: "Total number of sessions removed from the broker.",
		}),
	}
	for _, c := range []prometheus.Collector{m.subscribed, m.unsubscribed, m.published, m.eventsSent, m.sessionRemoved} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusBrokerMetrics) Subscribed()   { m.subscribed.Inc() }
func (m *PrometheusBrokerMetrics) Unsubscribed() { m.unsubscribed.Inc() }
func (m *PrometheusBrokerMetrics) Published(recipients int) {
	m.published.Inc()
	m.eventsSent.Add(float64(recipients))
}
func (m *PrometheusBrokerMetrics) SessionRemoved() { m.sessionRemoved.Inc() }
