package repository

import (
	"context"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// CostRepository defines the interface for billing API interactions.
type CostRepository interface {
	// GetServiceCosts returns month-to-date cost grouped by service
	// (first time bucket only).
	GetServiceCosts(ctx context.Context, period entity.CostPeriod) ([]entity.CostLine, error)
	// GetPeriodTotals returns one ungrouped total per daily bucket.
	// The result may be empty when billing data has not landed yet.
	GetPeriodTotals(ctx context.Context, period entity.CostPeriod) ([]entity.CostLine, error)
	GetForecast(ctx context.Context, period entity.CostPeriod) (entity.CostLine, error)

	GetBudgets(ctx context.Context, accountID string) ([]entity.BudgetInfo, error)
	GetAccountID(ctx context.Context) (string, error)
}
