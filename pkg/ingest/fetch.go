// pkg/ingest/fetch.go
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/David-Botos/email-cleanse/pkg/config"
	"github.com/David-Botos/email-cleanse/pkg/connector"
	"github.com/David-Botos/email-cleanse/pkg/model"
)

// Fetcher reads raw contact rows from the source connector and maps
// them into records the pipeline consumes. The configured email and
// facility columns are extracted; every other column is carried through
// untouched.
type Fetcher struct {
	source connector.DatabaseConnector
	cfg    config.SourceConfig
	logger *zap.Logger
}

// NewFetcher creates a new Fetcher instance
func NewFetcher(source connector.DatabaseConnector, cfg config.SourceConfig, logger *zap.Logger) (*Fetcher, error) {
	if source == nil {
		return nil, errors.New("source connector cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Fetcher{
		source: source,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// FetchAll reads every row of the source table into memory. The
// facility-based inference pass needs the whole dataset before any
// suffix can be applied, so streaming would not help here.
func (f *Fetcher) FetchAll(ctx context.Context) ([]model.RawRecord, error) {
	query := fmt.Sprintf("SELECT * FROM %s.%s", f.cfg.Schema, f.cfg.Table)

	queryCtx, cancel := context.WithTimeout(ctx, f.cfg.FetchTimeout)
	defer cancel()

	rows, err := f.source.DB().QueryContext(queryCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query source table: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read source columns: %w", err)
	}

	emailIdx, facilityIdx := -1, -1
	for i, col := range columns {
		switch {
		case strings.EqualFold(col, f.cfg.EmailColumn):
			emailIdx = i
		case strings.EqualFold(col, f.cfg.FacilityColumn):
			facilityIdx = i
		}
	}
	if emailIdx < 0 {
		return nil, fmt.Errorf("source table has no column %s", f.cfg.EmailColumn)
	}
	if facilityIdx < 0 {
		return nil, fmt.Errorf("source table has no column %s", f.cfg.FacilityColumn)
	}

	var records []model.RawRecord
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan source row %d: %w", len(records), err)
		}

		record := model.RawRecord{
			Email:      toNullableString(values[emailIdx]),
			FacilityID: toString(values[facilityIdx]),
		}

		passthrough := make(map[string]interface{}, len(columns)-2)
		for i, col := range columns {
			if i == emailIdx || i == facilityIdx {
				continue
			}
			passthrough[col] = values[i]
		}
		record.Passthrough = passthrough

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source rows: %w", err)
	}

	f.logger.Info("Fetched source rows",
		zap.String("schema", f.cfg.Schema),
		zap.String("table", f.cfg.Table),
		zap.Int("rows", len(records)))

	return records, nil
}

// toString converts a scanned value to a string
func toString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toNullableString converts a scanned value to a nullable string,
// preserving NULL
func toNullableString(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := toString(v)
	return &s
}
