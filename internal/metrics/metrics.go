package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const namespace = "deal_pipeline"

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Backend (remote facade) metrics
	BackendCallDuration *prometheus.HistogramVec
	BackendCallErrors   *prometheus.CounterVec

	// Business metrics
	DealsTotal        prometheus.Gauge
	ActiveDeals       prometheus.Gauge
	PipelineValue     prometheus.Gauge
	DealsCreatedTotal prometheus.Counter
	StageMovesTotal   prometheus.Counter

	logger *zap.Logger
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, nil)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	factory := promauto.With(registerer)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		BackendCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Simulated backend call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		BackendCallErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_call_errors_total",
			Help:      "Total number of failed backend calls",
		}, []string{"operation"}),
		DealsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deals_total",
			Help:      "Number of deals currently in the store",
		}),
		ActiveDeals: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_deals",
			Help:      "Number of deals in non-terminal stages",
		}),
		PipelineValue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_value",
			Help:      "Sum of deal values across the pipeline",
		}),
		DealsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deals_created_total",
			Help:      "Total number of deals created",
		}),
		StageMovesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_moves_total",
			Help:      "Total number of deal stage relocations",
		}),
		logger: logger,
	}
}

// safeExecute runs fn, recovering from panics so a metrics failure can
// never take down a request path.
func (m *Metrics) safeExecute(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("metrics operation failed",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
