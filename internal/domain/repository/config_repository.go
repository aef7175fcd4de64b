package repository

import (
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadFromEnv() (*types.Config, error)
}
