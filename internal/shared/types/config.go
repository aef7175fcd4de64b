package types

import (
	"fmt"
	"strings"
)

const (
	DefaultSESRegion          = "ap-southeast-1"
	DefaultCostExplorerRegion = "us-east-1"
	DefaultForecastDays       = 30
	DefaultArchivePrefix      = "cost-reports/"
)

// Config represents the application configuration. It is read from the
// environment and, for the CLI, may be overlaid by a TOML, YAML or JSON file.
type Config struct {
	SenderEmail        string `json:"sender_email" yaml:"sender_email" toml:"sender_email" env:"SENDER_EMAIL"`
	RecipientEmail     string `json:"recipient_email" yaml:"recipient_email" toml:"recipient_email" env:"RECIPIENT_EMAIL"`
	Profile            string `json:"profile" yaml:"profile" toml:"profile" env:"AWS_PROFILE"`
	SESRegion          string `json:"ses_region" yaml:"ses_region" toml:"ses_region" env:"SES_REGION" envDefault:"ap-southeast-1"`
	CostExplorerRegion string `json:"cost_explorer_region" yaml:"cost_explorer_region" toml:"cost_explorer_region" env:"COST_EXPLORER_REGION" envDefault:"us-east-1"`
	ForecastDays       int    `json:"forecast_days" yaml:"forecast_days" toml:"forecast_days" env:"FORECAST_DAYS" envDefault:"30"`
	IncludeBudgets     bool   `json:"include_budgets" yaml:"include_budgets" toml:"include_budgets" env:"INCLUDE_BUDGETS" envDefault:"false"`
	ArchiveBucket      string `json:"archive_bucket" yaml:"archive_bucket" toml:"archive_bucket" env:"REPORT_ARCHIVE_BUCKET"`
	ArchivePrefix      string `json:"archive_prefix" yaml:"archive_prefix" toml:"archive_prefix" env:"REPORT_ARCHIVE_PREFIX" envDefault:"cost-reports/"`
	LogLevel           string `json:"log_level" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL" envDefault:"info"`
}

// Validate checks the settings needed for a run. Mail addresses are only
// required when the report is going to be delivered.
func (c *Config) Validate(requireMail bool) error {
	var missing []string
	if requireMail {
		if strings.TrimSpace(c.SenderEmail) == "" {
			missing = append(missing, "SENDER_EMAIL")
		}
		if strings.TrimSpace(c.RecipientEmail) == "" {
			missing = append(missing, "RECIPIENT_EMAIL")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	if c.ForecastDays <= 0 {
		return fmt.Errorf("%w: forecast days must be positive, got %d", ErrInvalidConfig, c.ForecastDays)
	}
	return nil
}

// Merge overlays the non-zero fields of other on top of c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.SenderEmail != "" {
		c.SenderEmail = other.SenderEmail
	}
	if other.RecipientEmail != "" {
		c.RecipientEmail = other.RecipientEmail
	}
	if other.Profile != "" {
		c.Profile = other.Profile
	}
	if other.SESRegion != "" {
		c.SESRegion = other.SESRegion
	}
	if other.CostExplorerRegion != "" {
		c.CostExplorerRegion = other.CostExplorerRegion
	}
	if other.ForecastDays > 0 {
		c.ForecastDays = other.ForecastDays
	}
	if other.IncludeBudgets {
		c.IncludeBudgets = true
	}
	if other.ArchiveBucket != "" {
		c.ArchiveBucket = other.ArchiveBucket
	}
	if other.ArchivePrefix != "" {
		c.ArchivePrefix = other.ArchivePrefix
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// DefaultConfig returns a Config with every default applied and no addresses.
func DefaultConfig() *Config {
	return &Config{
		SESRegion:          DefaultSESRegion,
		CostExplorerRegion: DefaultCostExplorerRegion,
		ForecastDays:       DefaultForecastDays,
		ArchivePrefix:      DefaultArchivePrefix,
		LogLevel:           "info",
	}
}
