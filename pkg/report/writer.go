// pkg/report/writer.go
package report

import (
	"context"
	"time"

	"github.com/David-Botos/email-cleanse/pkg/model"
)

// RunMeta describes one cleansing run for the summary record.
type RunMeta struct {
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Writer persists the per-row cleaning report and the run summary.
type Writer interface {
	// WriteRows writes the cleaned rows under the given run ID
	WriteRows(ctx context.Context, runID string, records []model.CleanedRecord) error

	// WriteSummary writes the dataset-level counters for the run
	WriteSummary(ctx context.Context, runID string, stats model.SummaryStats, meta RunMeta) error

	// Close releases writer resources
	Close() error
}

// Verifier is implemented by writers that can check the persisted row
// count against the summary after a run.
type Verifier interface {
	VerifyRun(ctx context.Context, runID string, expectedRows int) error
}
