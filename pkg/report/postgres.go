// pkg/report/postgres.go
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/David-Botos/email-cleanse/pkg/config"
	"github.com/David-Botos/email-cleanse/pkg/model"
)

// PostgresWriter persists the cleaning report to PostgreSQL and ensures
// the report tables exist on first use.
type PostgresWriter struct {
	db     *sqlx.DB
	cfg    config.ReportConfig
	logger *zap.Logger
}

// NewPostgresWriter creates a new PostgresWriter and ensures the report
// tables exist
func NewPostgresWriter(ctx context.Context, db *sqlx.DB, cfg config.ReportConfig, logger *zap.Logger) (*PostgresWriter, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	w := &PostgresWriter{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	if err := w.setupTables(ctx); err != nil {
		return nil, fmt.Errorf("failed to setup report tables: %w", err)
	}

	return w, nil
}

// setupTables ensures the report and run-summary tables exist
func (w *PostgresWriter) setupTables(ctx context.Context) error {
	setupCtx, cancel := context.WithTimeout(ctx, w.cfg.WriteTimeout)
	defer cancel()

	reportSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS public.%s (
			run_id UUID NOT NULL,
			row_id UUID PRIMARY KEY,
			facility_id TEXT NOT NULL,
			e_mail TEXT,
			formatted_email TEXT,
			valid_before SMALLINT NOT NULL,
			valid_after SMALLINT NOT NULL,
			invalid_email TEXT,
			null_value SMALLINT NOT NULL,
			removed_spaces SMALLINT NOT NULL,
			extracted_from_wrappers SMALLINT NOT NULL,
			domain_change SMALLINT NOT NULL,
			typo_fix SMALLINT NOT NULL,
			punctuation SMALLINT NOT NULL,
			token_replacement SMALLINT NOT NULL,
			no_change SMALLINT NOT NULL,
			cleaned_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`, w.cfg.Table)

	if _, err := w.db.ExecContext(setupCtx, reportSQL); err != nil {
		return fmt.Errorf("failed to create report table: %w", err)
	}

	runSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS public.%s (
			run_id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			total_rows INTEGER NOT NULL,
			valid_before INTEGER NOT NULL,
			valid_after INTEGER NOT NULL,
			newly_fixed INTEGER NOT NULL,
			invalid_after INTEGER NOT NULL,
			null_original INTEGER NOT NULL,
			null_formatted INTEGER NOT NULL,
			duration_ms BIGINT NOT NULL,
			started_at TIMESTAMP WITH TIME ZONE NOT NULL,
			finished_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`, w.cfg.RunTable)

	if _, err := w.db.ExecContext(setupCtx, runSQL); err != nil {
		return fmt.Errorf("failed to create run table: %w", err)
	}

	w.logger.Info("Ensured report tables exist",
		zap.String("reportTable", w.cfg.Table),
		zap.String("runTable", w.cfg.RunTable))

	return nil
}

// WriteRows batch inserts cleaned rows under the given run ID
func (w *PostgresWriter) WriteRows(ctx context.Context, runID string, records []model.CleanedRecord) error {
	if len(records) == 0 {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, w.cfg.WriteTimeout)
	defer cancel()

	tx, err := w.db.BeginTxx(writeCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				w.logger.Error("Failed to rollback transaction",
					zap.Error(rbErr),
					zap.Error(err))
			}
		}
	}()

	insertSQL := fmt.Sprintf(`
		INSERT INTO public.%s
		(run_id, row_id, facility_id, e_mail, formatted_email,
		 valid_before, valid_after, invalid_email, null_value,
		 removed_spaces, extracted_from_wrappers, domain_change,
		 typo_fix, punctuation, token_replacement, no_change)
		VALUES (:run_id, :row_id, :facility_id, :e_mail, :formatted_email,
		 :valid_before, :valid_after, :invalid_email, :null_value,
		 :removed_spaces, :extracted_from_wrappers, :domain_change,
		 :typo_fix, :punctuation, :token_replacement, :no_change)
	`, w.cfg.Table)

	// Insert in batches to keep statements a manageable size
	for start := 0; start < len(records); start += w.cfg.BatchSize {
		end := start + w.cfg.BatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := make([]reportRow, 0, end-start)
		for _, rec := range records[start:end] {
			batch = append(batch, newReportRow(runID, rec))
		}

		if _, err = tx.NamedExecContext(writeCtx, insertSQL, batch); err != nil {
			return fmt.Errorf("failed to insert report rows %d-%d: %w", start, end, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Wrote report rows",
		zap.String("runID", runID),
		zap.Int("count", len(records)))

	return nil
}

// WriteSummary writes the dataset-level counters for the run
func (w *PostgresWriter) WriteSummary(ctx context.Context, runID string, stats model.SummaryStats, meta RunMeta) error {
	writeCtx, cancel := context.WithTimeout(ctx, w.cfg.WriteTimeout)
	defer cancel()

	insertSQL := fmt.Sprintf(`
		INSERT INTO public.%s
		(run_id, source, total_rows, valid_before, valid_after,
		 newly_fixed, invalid_after, null_original, null_formatted,
		 duration_ms, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, w.cfg.RunTable)

	_, err := w.db.ExecContext(writeCtx, insertSQL,
		runID,
		meta.Source,
		stats.TotalRows,
		stats.ValidBefore,
		stats.ValidAfter,
		stats.NewlyFixed,
		stats.InvalidAfter,
		stats.NullOriginal,
		stats.NullFormatted,
		meta.FinishedAt.Sub(meta.StartedAt).Milliseconds(),
		meta.StartedAt,
		meta.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run summary: %w", err)
	}

	return nil
}

// VerifyRun checks that the persisted row count matches the summary
func (w *PostgresWriter) VerifyRun(ctx context.Context, runID string, expectedRows int) error {
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM public.%s WHERE run_id = $1", w.cfg.Table)

	var count int
	if err := w.db.QueryRowContext(ctx, countSQL, runID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count report rows: %w", err)
	}

	if count != expectedRows {
		return fmt.Errorf("report row count mismatch: wrote %d, expected %d", count, expectedRows)
	}

	w.logger.Info("Verified report row count",
		zap.String("runID", runID),
		zap.Int("rows", count))

	return nil
}

// Close is a no-op; the connector owns the connection
func (w *PostgresWriter) Close() error {
	return nil
}
