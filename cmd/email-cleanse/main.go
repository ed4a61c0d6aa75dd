// cmd/email-cleanse/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/David-Botos/email-cleanse/pkg/cleaner"
	"github.com/David-Botos/email-cleanse/pkg/config"
	"github.com/David-Botos/email-cleanse/pkg/connector"
	"github.com/David-Botos/email-cleanse/pkg/ingest"
	"github.com/David-Botos/email-cleanse/pkg/pipeline"
	"github.com/David-Botos/email-cleanse/pkg/report"
	"github.com/David-Botos/email-cleanse/pkg/rules"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "email-cleanse failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env when present; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := config.BuildLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Cancel the run on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := connector.NewConnectorFactory(cfg, logger)

	source, err := factory.CreateSourceConnector(ctx)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := source.Validate(); err != nil {
		return fmt.Errorf("source validation failed: %w", err)
	}
	if err := source.ValidateSourceTable(ctx,
		cfg.Source.Schema,
		cfg.Source.Table,
		cfg.Source.EmailColumn,
		cfg.Source.FacilityColumn,
	); err != nil {
		return fmt.Errorf("source table validation failed: %w", err)
	}

	writer, cleanup, err := buildWriter(ctx, cfg, factory, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	tables, err := rules.LoadOrDefault(cfg.RulesPath, logger)
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}

	emailCleaner, err := cleaner.NewEmailCleaner(tables, logger)
	if err != nil {
		return err
	}
	if cfg.WorkerPoolSize > 0 {
		emailCleaner = emailCleaner.WithWorkerCount(cfg.WorkerPoolSize)
	}

	fetcher, err := ingest.NewFetcher(source, cfg.Source, logger)
	if err != nil {
		return err
	}

	sourceName := fmt.Sprintf("%s.%s.%s", cfg.Snowflake.Database, cfg.Source.Schema, cfg.Source.Table)
	runner, err := pipeline.NewRunner(fetcher, emailCleaner, writer, sourceName, logger)
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Run finished",
		zap.String("runID", summary.RunID),
		zap.Duration("duration", summary.Duration),
		zap.Float64("rowsPerSecond", summary.Throughput))

	return nil
}

// buildWriter constructs the configured report sink. The returned
// cleanup closes the writer and, for postgres, the connector behind it.
func buildWriter(ctx context.Context, cfg *config.Config, factory *connector.ConnectorFactory, logger *zap.Logger) (report.Writer, func(), error) {
	switch cfg.Report.Sink {
	case config.SinkPostgres:
		pg, err := factory.CreateReportConnector(ctx)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Validate(); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("report database validation failed: %w", err)
		}

		writer, err := report.NewPostgresWriter(ctx, pg.Sqlx(), cfg.Report, logger)
		if err != nil {
			pg.Close()
			return nil, nil, err
		}

		cleanup := func() {
			writer.Close()
			pg.Close()
		}
		return writer, cleanup, nil

	case config.SinkCSV:
		writer, err := report.NewCSVWriter(cfg.Report.CSVPath, logger)
		if err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			if err := writer.Close(); err != nil {
				logger.Error("Failed to close report file", zap.Error(err))
			}
		}
		return writer, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown report sink %q", cfg.Report.Sink)
	}
}
