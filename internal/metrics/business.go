package metrics

import "time"

// RecordBackendCall records the duration and outcome of a remote facade call
func (m *Metrics) RecordBackendCall(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordBackendCall", func() {
		m.BackendCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
		if err != nil {
			m.BackendCallErrors.WithLabelValues(operation).Inc()
		}
	})
}

// DealCreated increments the created-deals counter
func (m *Metrics) DealCreated() {
	m.safeExecute("DealCreated", func() {
		m.DealsCreatedTotal.Inc()
	})
}

// StageMoved increments the stage-relocation counter
func (m *Metrics) StageMoved() {
	m.safeExecute("StageMoved", func() {
		m.StageMovesTotal.Inc()
	})
}

// UpdatePipelineGauges refreshes the business gauges from a store snapshot
func (m *Metrics) UpdatePipelineGauges(total, active int, value float64) {
	m.safeExecute("UpdatePipelineGauges", func() {
		m.DealsTotal.Set(float64(total))
		m.ActiveDeals.Set(float64(active))
		m.PipelineValue.Set(value)
	})
}
