// pkg/pipeline/metrics.go
package pipeline

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// RunMetrics tracks phase timings for one cleansing run.
type RunMetrics struct {
	mu        sync.Mutex
	StartTime time.Time
	EndTime   time.Time
	Phases    map[string]time.Duration
	Rows      int
}

// NewRunMetrics creates a new RunMetrics instance
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{
		StartTime: time.Now(),
		Phases:    make(map[string]time.Duration),
	}
}

// TimePhase records the duration of a named phase. Call the returned
// function when the phase ends.
func (m *RunMetrics) TimePhase(name string) func() {
	start := time.Now()
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.Phases[name] = time.Since(start)
	}
}

// Complete marks the run as finished
func (m *RunMetrics) Complete(rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EndTime = time.Now()
	m.Rows = rows
}

// Duration returns the total run duration
func (m *RunMetrics) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// Throughput returns processed rows per second
func (m *RunMetrics) Throughput() float64 {
	duration := m.Duration()
	if duration.Seconds() <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.Rows) / duration.Seconds()
}

// Log writes the phase timings to the logger
func (m *RunMetrics) Log(logger *zap.Logger) {
	m.mu.Lock()
	fields := []zap.Field{
		zap.Int("rows", m.Rows),
	}
	for name, duration := range m.Phases {
		fields = append(fields, zap.Duration(name, duration))
	}
	m.mu.Unlock()

	fields = append(fields,
		zap.Duration("total", m.Duration()),
		zap.Float64("rowsPerSecond", m.Throughput()))

	logger.Info("Run metrics", fields...)
}
