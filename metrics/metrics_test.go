package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNoOpDealerMetricsSatisfiesInterface(t *testing.T) {
	var m DealerMetrics = NoOpDealerMetrics{}
	m.Registered()
	m.Unregistered()
	m.CallRouted()
	m.CallErrored()
	m.SessionRemoved()
}

func TestNoOpBrokerMetricsSatisfiesInterface(t *testing.T) {
	var m BrokerMetrics = NoOpBrokerMetrics{}
	m.Subscribed()
	m.Unsubscribed()
	m.Published(3)
	m.SessionRemoved()
}

func TestPrometheusDealerMetricsRegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusDealerMetrics(reg)
	if err != nil {
		t.Fatalf("NewPrometheusDealerMetrics: %v", err)
	}
	m.Registered()
	m.CallRouted()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatalf("expected registered metric families, got none")
	}
}

func TestPrometheusDealerMetricsDuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusDealerMetrics(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPrometheusDealerMetrics(reg); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestPrometheusBrokerMetricsRegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusBrokerMetrics(reg)
	if err != nil {
		t.Fatalf("NewPrometheusBrokerMetrics: %v", err)
	}
	m.Subscribed()
	m.Published(2)
}
