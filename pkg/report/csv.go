// pkg/report/csv.go
package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/David-Botos/email-cleanse/pkg/model"
)

// csvHeader is the documented output schema, in order.
var csvHeader = []string{
	"e_mail", "formatted_email", "valid_before", "valid_after",
	"invalid_email", "null_value", "removed_spaces",
	"extracted_from_wrappers", "domain_change", "typo_fix",
	"punctuation", "token_replacement", "no_change",
}

// CSVWriter writes the cleaning report to a local CSV file, with the
// run summary as a JSON sidecar next to it.
type CSVWriter struct {
	path   string
	logger *zap.Logger
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates the report file and writes the header
func NewCSVWriter(path string, logger *zap.Logger) (*CSVWriter, error) {
	if path == "" {
		return nil, errors.New("csv path cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	return &CSVWriter{
		path:   path,
		logger: logger,
		file:   file,
		writer: writer,
	}, nil
}

// WriteRows appends cleaned rows to the report file
func (w *CSVWriter) WriteRows(_ context.Context, runID string, records []model.CleanedRecord) error {
	for i, rec := range records {
		row := newReportRow(runID, rec)
		fields := []string{
			nullableString(row.Email),
			nullableString(row.FormattedEmail),
			bitString(row.ValidBefore),
			bitString(row.ValidAfter),
			nullableString(row.InvalidEmail),
			bitString(row.NullValue),
			bitString(row.RemovedSpaces),
			bitString(row.ExtractedFromWrappers),
			bitString(row.DomainChange),
			bitString(row.TypoFix),
			bitString(row.Punctuation),
			bitString(row.TokenReplacement),
			bitString(row.NoChange),
		}
		if err := w.writer.Write(fields); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", i, err)
		}
	}

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report rows: %w", err)
	}

	w.logger.Info("Wrote report rows",
		zap.String("path", w.path),
		zap.Int("count", len(records)))

	return nil
}

// WriteSummary writes the run summary as a JSON sidecar
func (w *CSVWriter) WriteSummary(_ context.Context, runID string, stats model.SummaryStats, meta RunMeta) error {
	summary := struct {
		RunID      string             `json:"run_id"`
		Source     string             `json:"source"`
		Stats      model.SummaryStats `json:"stats"`
		StartedAt  string             `json:"started_at"`
		FinishedAt string             `json:"finished_at"`
	}{
		RunID:      runID,
		Source:     meta.Source,
		Stats:      stats,
		StartedAt:  meta.StartedAt.Format(time.RFC3339),
		FinishedAt: meta.FinishedAt.Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	sidecar := w.path + ".summary.json"
	if err := os.WriteFile(sidecar, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}

	w.logger.Info("Wrote run summary", zap.String("path", sidecar))
	return nil
}

// Close flushes and closes the report file
func (w *CSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush report file: %w", err)
	}
	return w.file.Close()
}
