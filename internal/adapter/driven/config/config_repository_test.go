package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cost-report/internal/shared/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		for _, key := range []string{"SENDER_EMAIL", "RECIPIENT_EMAIL", "SES_REGION", "COST_EXPLORER_REGION",
			"FORECAST_DAYS", "INCLUDE_BUDGETS", "REPORT_ARCHIVE_BUCKET", "REPORT_ARCHIVE_PREFIX", "LOG_LEVEL", "AWS_PROFILE"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := NewConfigRepository().LoadFromEnv()
		require.NoError(t, err)

		require.Equal(t, types.DefaultConfig(), cfg)
		require.ErrorIs(t, cfg.Validate(true), types.ErrMissingConfig)
		require.NoError(t, cfg.Validate(false))
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("SENDER_EMAIL", "reports@example.com")
		t.Setenv("RECIPIENT_EMAIL", "finops@example.com")
		t.Setenv("SES_REGION", "eu-west-1")
		t.Setenv("FORECAST_DAYS", "14")
		t.Setenv("INCLUDE_BUDGETS", "true")
		t.Setenv("REPORT_ARCHIVE_BUCKET", "reports-bucket")

		cfg, err := NewConfigRepository().LoadFromEnv()
		require.NoError(t, err)

		require.Equal(t, "reports@example.com", cfg.SenderEmail)
		require.Equal(t, "finops@example.com", cfg.RecipientEmail)
		require.Equal(t, "eu-west-1", cfg.SESRegion)
		require.Equal(t, "us-east-1", cfg.CostExplorerRegion)
		require.Equal(t, 14, cfg.ForecastDays)
		require.True(t, cfg.IncludeBudgets)
		require.Equal(t, "reports-bucket", cfg.ArchiveBucket)
		require.NoError(t, cfg.Validate(true))
	})

	t.Run("should fail on malformed values", func(t *testing.T) {
		t.Setenv("FORECAST_DAYS", "thirty")

		_, err := NewConfigRepository().LoadFromEnv()
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("should read .env file without overriding the environment", func(t *testing.T) {
		envFile := writeFile(t, ".env", "SENDER_EMAIL=dotenv@example.com\nRECIPIENT_EMAIL=dotenv-to@example.com\n")
		t.Setenv("RECIPIENT_EMAIL", "real@example.com")
		t.Setenv("SENDER_EMAIL", "")
		require.NoError(t, os.Unsetenv("SENDER_EMAIL"))
		t.Cleanup(func() { _ = os.Unsetenv("SENDER_EMAIL") })

		cfg, err := NewConfigRepository(envFile).LoadFromEnv()
		require.NoError(t, err)

		require.Equal(t, "dotenv@example.com", cfg.SenderEmail)
		require.Equal(t, "real@example.com", cfg.RecipientEmail)
	})
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `sender_email = "reports@example.com"
recipient_email = "finops@example.com"
forecast_days = 14
include_budgets = true
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `sender_email: reports@example.com
recipient_email: finops@example.com
forecast_days: 14
include_budgets: true
`,
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"sender_email":"reports@example.com","recipient_email":"finops@example.com","forecast_days":14,"include_budgets":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			require.Equal(t, "reports@example.com", cfg.SenderEmail)
			require.Equal(t, "finops@example.com", cfg.RecipientEmail)
			require.Equal(t, 14, cfg.ForecastDays)
			require.True(t, cfg.IncludeBudgets)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = repo.LoadConfigFile(t.TempDir())
	require.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "config.ini", "a=b"))
	require.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(writeFile(t, "config.json", "{not json"))
	require.ErrorContains(t, err, "error parsing JSON file")
}
