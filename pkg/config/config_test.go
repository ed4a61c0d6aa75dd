// pkg/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredSnowflakeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SNOWFLAKE_USER", "tester")
	t.Setenv("SNOWFLAKE_PASSWORD", "secret")
	t.Setenv("SNOWFLAKE_ACCOUNT", "acct")
	t.Setenv("SNOWFLAKE_WAREHOUSE", "wh")
}

func setRequiredPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "tester")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "reports")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredSnowflakeEnv(t)
	setRequiredPostgresEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "WA211", cfg.Source.Schema)
	assert.Equal(t, "CONTACT", cfg.Source.Table)
	assert.Equal(t, "E_MAIL", cfg.Source.EmailColumn)
	assert.Equal(t, "FACILITY_ID", cfg.Source.FacilityColumn)
	assert.Equal(t, 5*time.Minute, cfg.Source.FetchTimeout)

	assert.Equal(t, SinkPostgres, cfg.Report.Sink)
	assert.Equal(t, "email_cleaning_report", cfg.Report.Table)
	assert.Equal(t, "email_cleaning_runs", cfg.Report.RunTable)
	assert.Equal(t, 1000, cfg.Report.BatchSize)

	assert.Equal(t, 0, cfg.WorkerPoolSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	require.NotNil(t, cfg.Snowflake)
	assert.Equal(t, "NORSE_STAGING", cfg.Snowflake.Database)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestLoadConfigCSVSinkSkipsPostgres(t *testing.T) {
	setRequiredSnowflakeEnv(t)
	t.Setenv("REPORT_SINK", "csv")
	t.Setenv("REPORT_CSV_PATH", "out.csv")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, SinkCSV, cfg.Report.Sink)
	assert.Nil(t, cfg.Postgres)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredSnowflakeEnv(t)
	setRequiredPostgresEnv(t)
	t.Setenv("SOURCE_SCHEMA", "OTHER")
	t.Setenv("EMAIL_COLUMN", "EMAIL_ADDR")
	t.Setenv("WORKER_POOL_SIZE", "8")
	t.Setenv("REPORT_BATCH_SIZE", "250")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "OTHER", cfg.Source.Schema)
	assert.Equal(t, "EMAIL_ADDR", cfg.Source.EmailColumn)
	assert.Equal(t, 8, cfg.WorkerPoolSize)
	assert.Equal(t, 250, cfg.Report.BatchSize)
}

func TestLoadConfigMissingSnowflakeUser(t *testing.T) {
	t.Setenv("SNOWFLAKE_USER", "")
	t.Setenv("SNOWFLAKE_PASSWORD", "secret")
	t.Setenv("SNOWFLAKE_ACCOUNT", "acct")
	t.Setenv("SNOWFLAKE_WAREHOUSE", "wh")
	setRequiredPostgresEnv(t)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Snowflake: &SnowflakeConfig{},
			Postgres:  &PostgresConfig{},
			Source: SourceConfig{
				Table:          "CONTACT",
				EmailColumn:    "E_MAIL",
				FacilityColumn: "FACILITY_ID",
			},
			Report: ReportConfig{
				Sink:      SinkPostgres,
				BatchSize: 100,
			},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Report.Sink = "ftp"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Report.Sink = SinkCSV
	cfg.Report.CSVPath = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Postgres = nil
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Source.Table = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Report.BatchSize = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.WorkerPoolSize = -1
	assert.Error(t, cfg.Validate())
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "tester",
		Password: "secret",
		Database: "reports",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=tester password=secret dbname=reports sslmode=require",
		cfg.ConnectionString())
}
