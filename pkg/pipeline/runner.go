// pkg/pipeline/runner.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/David-Botos/email-cleanse/pkg/cleaner"
	"github.com/David-Botos/email-cleanse/pkg/ingest"
	"github.com/David-Botos/email-cleanse/pkg/model"
	"github.com/David-Botos/email-cleanse/pkg/report"
)

// Runner wires the fetch, clean, and report phases of a cleansing run.
type Runner struct {
	fetcher *ingest.Fetcher
	cleaner *cleaner.EmailCleaner
	writer  report.Writer
	logger  *zap.Logger
	source  string
}

// RunSummary is the final result of one cleansing run.
type RunSummary struct {
	RunID      string
	Source     string
	Stats      model.SummaryStats
	Duration   time.Duration
	Throughput float64 // rows/second
}

// NewRunner creates a new Runner instance
func NewRunner(
	fetcher *ingest.Fetcher,
	emailCleaner *cleaner.EmailCleaner,
	writer report.Writer,
	source string,
	logger *zap.Logger,
) (*Runner, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher cannot be nil")
	}
	if emailCleaner == nil {
		return nil, errors.New("cleaner cannot be nil")
	}
	if writer == nil {
		return nil, errors.New("writer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Runner{
		fetcher: fetcher,
		cleaner: emailCleaner,
		writer:  writer,
		logger:  logger,
		source:  source,
	}, nil
}

// Run executes one full cleansing run over the source dataset.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.New().String()
	metrics := NewRunMetrics()
	startedAt := time.Now()

	r.logger.Info("Starting cleansing run",
		zap.String("runID", runID),
		zap.String("source", r.source))

	// Fetch
	endFetch := metrics.TimePhase("fetch")
	records, err := r.fetcher.FetchAll(ctx)
	endFetch()
	if err != nil {
		return nil, fmt.Errorf("fetch phase failed: %w", err)
	}

	// Clean (two-pass; pass 2 needs pass 1's full-dataset index)
	endClean := metrics.TimePhase("clean")
	cleaned, stats, err := r.cleaner.CleanAll(ctx, records)
	endClean()
	if err != nil {
		return nil, fmt.Errorf("clean phase failed: %w", err)
	}

	// Write
	endWrite := metrics.TimePhase("write")
	err = r.writer.WriteRows(ctx, runID, cleaned)
	endWrite()
	if err != nil {
		return nil, fmt.Errorf("write phase failed: %w", err)
	}

	meta := report.RunMeta{
		Source:     r.source,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if err := r.writer.WriteSummary(ctx, runID, stats, meta); err != nil {
		return nil, fmt.Errorf("failed to write run summary: %w", err)
	}

	// Verify the persisted row count when the sink supports it
	if verifier, ok := r.writer.(report.Verifier); ok {
		if err := verifier.VerifyRun(ctx, runID, stats.TotalRows); err != nil {
			return nil, fmt.Errorf("run verification failed: %w", err)
		}
	}

	metrics.Complete(stats.TotalRows)
	metrics.Log(r.logger)

	summary := &RunSummary{
		RunID:      runID,
		Source:     r.source,
		Stats:      stats,
		Duration:   metrics.Duration(),
		Throughput: metrics.Throughput(),
	}

	r.logger.Info("Cleansing run completed",
		zap.String("runID", runID),
		zap.Int("totalRows", stats.TotalRows),
		zap.Int("validBefore", stats.ValidBefore),
		zap.Int("validAfter", stats.ValidAfter),
		zap.Int("newlyFixed", stats.NewlyFixed),
		zap.Int("invalidAfter", stats.InvalidAfter),
		zap.Int("nullOriginal", stats.NullOriginal),
		zap.Int("nullFormatted", stats.NullFormatted),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}
