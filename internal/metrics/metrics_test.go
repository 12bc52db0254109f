package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/api/deals", 200, 50*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/deals", 200, 30*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/deals", 404, 10*time.Millisecond)

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/deals", "2xx"))
	if got != 2 {
		t.Errorf("2xx counter = %v, want 2", got)
	}
	got = testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/deals", "4xx"))
	if got != 1 {
		t.Errorf("4xx counter = %v, want 1", got)
	}
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{502, "5xx"},
		{100, "unknown"},
	}
	for _, tt := range tests {
		if got := categorizeStatus(tt.code); got != tt.want {
			t.Errorf("categorizeStatus(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	for _, path := range []string{"/metrics", "/health", "/ready"} {
		if !ShouldSkipEndpoint(path) {
			t.Errorf("expected %s to be skipped", path)
		}
	}
	if ShouldSkipEndpoint("/api/deals") {
		t.Error("/api/deals should not be skipped")
	}
}

func TestRecordBackendCall(t *testing.T) {
	m := newTestMetrics()

	m.RecordBackendCall("listDeals", 400*time.Millisecond, nil)
	m.RecordBackendCall("listDeals", 400*time.Millisecond, errors.New("boom"))

	got := testutil.ToFloat64(m.BackendCallErrors.WithLabelValues("listDeals"))
	if got != 1 {
		t.Errorf("error counter = %v, want 1", got)
	}
}

func TestBusinessCounters(t *testing.T) {
	m := newTestMetrics()

	m.DealCreated()
	m.DealCreated()
	m.StageMoved()

	if got := testutil.ToFloat64(m.DealsCreatedTotal); got != 2 {
		t.Errorf("deals created = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.StageMovesTotal); got != 1 {
		t.Errorf("stage moves = %v, want 1", got)
	}
}

func TestUpdatePipelineGauges(t *testing.T) {
	m := newTestMetrics()

	m.UpdatePipelineGauges(4, 3, 1196)

	if got := testutil.ToFloat64(m.DealsTotal); got != 4 {
		t.Errorf("deals total = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.ActiveDeals); got != 3 {
		t.Errorf("active deals = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.PipelineValue); got != 1196 {
		t.Errorf("pipeline value = %v, want 1196", got)
	}
}
