// pkg/cleaner/cleaner.go
package cleaner

import (
	"context"
	"errors"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/David-Botos/email-cleanse/pkg/model"
	"github.com/David-Botos/email-cleanse/pkg/rules"
)

// EmailCleaner runs the multi-stage email normalization/validation
// pipeline over a dataset. Every stage is total: it returns an
// unchanged value plus a false flag when it does not apply, so a record
// always reaches its terminal state.
type EmailCleaner struct {
	rules   *rules.Tables
	logger  *zap.Logger
	workers int
}

// NewEmailCleaner creates a new EmailCleaner instance.
func NewEmailCleaner(tables *rules.Tables, logger *zap.Logger) (*EmailCleaner, error) {
	if tables == nil {
		return nil, errors.New("rule tables cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &EmailCleaner{
		rules:   tables,
		logger:  logger,
		workers: runtime.NumCPU(),
	}, nil
}

// WithWorkerCount sets the number of workers used by CleanAll and
// returns the modified cleaner.
func (c *EmailCleaner) WithWorkerCount(count int) *EmailCleaner {
	if count > 0 {
		c.workers = count
	}
	return c
}

// CleanRecord runs the per-record stages: null check, wrapper
// extraction, normalization, typo correction, separator promotion, and
// the first validation. Facility-based suffix inference happens in
// CleanAll, which has the dataset-wide view the index needs.
func (c *EmailCleaner) CleanRecord(raw model.RawRecord) model.CleanedRecord {
	rec := model.CleanedRecord{
		RowID:       uuid.New().String(),
		FacilityID:  raw.FacilityID,
		Original:    raw.Email,
		Passthrough: raw.Passthrough,
	}

	// Dynamic nulls short-circuit the pipeline: no formatted value, no
	// validity either way.
	if raw.Email == nil || c.rules.IsNullValue(*raw.Email) {
		rec.Flags.NullValue = true
		rec.Flags = rec.Flags.Finalize()
		return rec
	}

	original := *raw.Email
	rec.ValidBefore = IsValidEmail(original)

	candidate, extracted := c.extractFromWrappers(original)
	rec.Flags.ExtractedFromWrappers = extracted

	candidate, removedSpaces, tokenReplaced := c.normalize(candidate)
	rec.Flags.RemovedSpaces = removedSpaces
	rec.Flags.TokenReplacement = tokenReplaced

	candidate, typoFix, punctuation := c.fixTypos(candidate)
	rec.Flags.TypoFix = typoFix
	rec.Flags.Punctuation = punctuation

	candidate, separatorFixed := c.fixSeparator(candidate)
	rec.Flags.TypoFix = rec.Flags.TypoFix || separatorFixed

	rec.ValidAfter = IsValidEmail(candidate)
	setOutcome(&rec, candidate)
	rec.Flags = rec.Flags.Finalize()

	return rec
}

// CleanAll processes the dataset in two phases. Pass 1 cleans every
// record and aggregates per-facility suffix frequencies on per-worker
// counters; the counters are merged and frozen into the facility index.
// Pass 2 applies the index to records that are still invalid. Records
// are independent of each other except through the frozen index, so
// both passes run their chunks in parallel.
func (c *EmailCleaner) CleanAll(ctx context.Context, records []model.RawRecord) ([]model.CleanedRecord, model.SummaryStats, error) {
	cleaned := make([]model.CleanedRecord, len(records))
	if len(records) == 0 {
		return cleaned, model.SummaryStats{}, nil
	}

	chunks := splitChunks(len(records), c.workers)
	counters := make([]facilityCounter, len(chunks))

	g, passCtx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			counter := newFacilityCounter()
			for idx := chunk.start; idx < chunk.end; idx++ {
				select {
				case <-passCtx.Done():
					return passCtx.Err()
				default:
				}

				rec := c.CleanRecord(records[idx])
				cleaned[idx] = rec

				if rec.ValidAfter && rec.Formatted != nil {
					counter.observe(rec.FacilityID, *rec.Formatted, idx)
				}
			}
			counters[i] = counter
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, model.SummaryStats{}, err
	}

	// Merge per-worker counters in chunk order, then freeze the index.
	merged := newFacilityCounter()
	for _, counter := range counters {
		merged.merge(counter)
	}
	index := merged.buildIndex()

	c.logger.Debug("Built facility TLD index",
		zap.Int("facilities", len(index)))

	g, passCtx = errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			for idx := chunk.start; idx < chunk.end; idx++ {
				select {
				case <-passCtx.Done():
					return passCtx.Err()
				default:
				}
				c.applyFacilityInference(&cleaned[idx], index)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, model.SummaryStats{}, err
	}

	stats := model.Summarize(cleaned)

	c.logger.Info("Dataset cleaning completed",
		zap.Int("totalRows", stats.TotalRows),
		zap.Int("validBefore", stats.ValidBefore),
		zap.Int("validAfter", stats.ValidAfter),
		zap.Int("newlyFixed", stats.NewlyFixed),
		zap.Int("invalidAfter", stats.InvalidAfter))

	return cleaned, stats, nil
}

// applyFacilityInference runs pass 2 for one record: if it is still
// invalid and email-shaped without a dotted suffix, append the
// facility's majority suffix and revalidate.
func (c *EmailCleaner) applyFacilityInference(rec *model.CleanedRecord, index FacilityTLDIndex) {
	if rec.Flags.NullValue || rec.ValidAfter || rec.InvalidEmail == nil {
		return
	}

	candidate, applied := applyInferredTLD(*rec.InvalidEmail, rec.FacilityID, index)
	if !applied {
		return
	}

	rec.Flags.DomainChange = true
	rec.ValidAfter = IsValidEmail(candidate)
	setOutcome(rec, candidate)
	rec.Flags = rec.Flags.Finalize()
}

// setOutcome fills the formatted/invalid fields from the terminal
// candidate string.
func setOutcome(rec *model.CleanedRecord, candidate string) {
	if rec.ValidAfter {
		rec.Formatted = &candidate
		rec.InvalidEmail = nil
	} else {
		rec.Formatted = nil
		rec.InvalidEmail = &candidate
	}
}

// chunk is a half-open index range of the dataset.
type chunk struct {
	start int
	end   int
}

// splitChunks divides n records into at most workers contiguous ranges.
func splitChunks(n, workers int) []chunk {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunks := make([]chunk, 0, workers)
	size := (n + workers - 1) / workers
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		chunks = append(chunks, chunk{start: start, end: end})
	}

	return chunks
}
