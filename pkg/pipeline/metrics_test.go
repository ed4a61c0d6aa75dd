// pkg/pipeline/metrics_test.go
package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunMetricsPhases(t *testing.T) {
	m := NewRunMetrics()

	end := m.TimePhase("fetch")
	time.Sleep(time.Millisecond)
	end()

	assert.Contains(t, m.Phases, "fetch")
	assert.Greater(t, m.Phases["fetch"], time.Duration(0))
}

func TestRunMetricsThroughput(t *testing.T) {
	m := NewRunMetrics()
	time.Sleep(time.Millisecond)
	m.Complete(1000)

	assert.Equal(t, 1000, m.Rows)
	assert.Greater(t, m.Duration(), time.Duration(0))
	assert.Greater(t, m.Throughput(), 0.0)
}
