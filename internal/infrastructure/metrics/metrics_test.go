package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Swap the default registry so New registers here.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.EntriesPosted == nil || m.HTTPRequests == nil || m.DBQueries == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.EntriesPosted.Inc()
	if got := testutil.ToFloat64(m.EntriesPosted); got != 1 {
		t.Fatalf("expected ledger_entries_posted_total = 1, got %v", got)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() == "ledger_entries_posted_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ledger_entries_posted_total among %d families", len(families))
	}
}
