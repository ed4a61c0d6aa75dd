// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Sink selection for the cleaning report.
const (
	SinkPostgres = "postgres"
	SinkCSV      = "csv"
)

// Config represents the application configuration
type Config struct {
	// Database connections
	Snowflake *SnowflakeConfig
	Postgres  *PostgresConfig

	// Source dataset
	Source SourceConfig

	// Report output
	Report ReportConfig

	// Pipeline settings
	WorkerPoolSize int
	RulesPath      string

	// Logging
	LogLevel  string
	LogFormat string
}

// SourceConfig describes where the raw contact rows live.
type SourceConfig struct {
	Schema         string
	Table          string
	EmailColumn    string
	FacilityColumn string
	FetchTimeout   time.Duration
}

// ReportConfig describes where the cleaning report goes.
type ReportConfig struct {
	Sink         string // "postgres" or "csv"
	CSVPath      string
	Table        string
	RunTable     string
	BatchSize    int
	WriteTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Source: SourceConfig{
			Schema:         getEnv("SOURCE_SCHEMA", "WA211"),
			Table:          getEnv("SOURCE_TABLE", "CONTACT"),
			EmailColumn:    getEnv("EMAIL_COLUMN", "E_MAIL"),
			FacilityColumn: getEnv("FACILITY_COLUMN", "FACILITY_ID"),
			FetchTimeout:   time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 300)) * time.Second,
		},
		Report: ReportConfig{
			Sink:         getEnv("REPORT_SINK", SinkPostgres),
			CSVPath:      getEnv("REPORT_CSV_PATH", "email_cleaning_report.csv"),
			Table:        getEnv("REPORT_TABLE", "email_cleaning_report"),
			RunTable:     getEnv("REPORT_RUN_TABLE", "email_cleaning_runs"),
			BatchSize:    getEnvAsInt("REPORT_BATCH_SIZE", 1000),
			WriteTimeout: time.Duration(getEnvAsInt("REPORT_WRITE_TIMEOUT_SECONDS", 300)) * time.Second,
		},
		WorkerPoolSize: getEnvAsInt("WORKER_POOL_SIZE", 0), // 0 means use runtime.NumCPU()
		RulesPath:      getEnv("RULES_PATH", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	// Load database configurations
	snowConfig, err := LoadSnowflakeConfig()
	if err != nil {
		return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
	}
	cfg.Snowflake = snowConfig

	// The Postgres sink is optional when the report goes to CSV
	if cfg.Report.Sink == SinkPostgres {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.Snowflake == nil {
		return errors.New("snowflake configuration is required")
	}

	switch c.Report.Sink {
	case SinkPostgres:
		if c.Postgres == nil {
			return errors.New("postgreSQL configuration is required for the postgres sink")
		}
	case SinkCSV:
		if c.Report.CSVPath == "" {
			return errors.New("REPORT_CSV_PATH is required for the csv sink")
		}
	default:
		return errors.New("REPORT_SINK must be \"postgres\" or \"csv\"")
	}

	if c.Source.Table == "" {
		return errors.New("source table is required")
	}

	if c.Source.EmailColumn == "" || c.Source.FacilityColumn == "" {
		return errors.New("email and facility column names are required")
	}

	if c.Report.BatchSize <= 0 {
		return errors.New("report batch size must be positive")
	}

	if c.WorkerPoolSize < 0 {
		return errors.New("worker pool size cannot be negative")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
