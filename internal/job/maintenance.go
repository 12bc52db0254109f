package job

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"deal-pipeline-api/internal/metrics"
	"deal-pipeline-api/internal/persist"
	"deal-pipeline-api/internal/service"
	"deal-pipeline-api/internal/store"
)

// garbageCollector is implemented by storage backends that need periodic
// compaction (badger's value log).
type garbageCollector interface {
	RunGC() error
}

// MaintenanceJob refreshes the business gauges from a store snapshot and
// compacts the storage backend when it supports it.
type MaintenanceJob struct {
	store   *store.Store
	kv      persist.KV
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewMaintenanceJob creates a new MaintenanceJob instance
func NewMaintenanceJob(st *store.Store, kv persist.KV, m *metrics.Metrics, logger *zap.Logger) *MaintenanceJob {
	return &MaintenanceJob{store: st, kv: kv, metrics: m, logger: logger}
}

// Run executes one maintenance pass
func (j *MaintenanceJob) Run() {
	stats := service.ProjectStats(j.store.Snapshot().Deals)
	if j.metrics != nil {
		j.metrics.UpdatePipelineGauges(stats.TotalDeals, stats.ActiveDeals, stats.TotalValue)
	}

	if gc, ok := j.kv.(garbageCollector); ok {
		if err := gc.RunGC(); err != nil {
			j.logger.Warn("storage garbage collection failed", zap.Error(err))
		}
	}
}

// Schedule registers the job with a cron runner and starts it
func Schedule(j *MaintenanceJob, spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddJob(spec, j); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
