package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/dashboard", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/v1/dashboard", "GET", 200, 7*time.Millisecond)
	m.RecordSelectionChange("toggle_department")
	m.RecordCacheLookup("lru", "hit")
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/dashboard", "200")); got != 2 {
		t.Errorf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.selections.WithLabelValues("toggle_department")); got != 1 {
		t.Errorf("expected 1 selection change, got %v", got)
	}
	if got := testutil.ToFloat64(m.sessions); got != 1 {
		t.Errorf("expected 1 active session, got %v", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("NOT_FOUND")
	m.RecordSelectionChange("clear_doctors")
	m.RecordCacheLookup("redis", "miss")
	m.SessionOpened()
	m.SessionClosed()
}
