package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

type mockCostRepository struct {
	mock.Mock
}

func (m *mockCostRepository) GetServiceCosts(ctx context.Context, period entity.CostPeriod) ([]entity.CostLine, error) {
	args := m.Called(ctx, period)
	lines, _ := args.Get(0).([]entity.CostLine)
	return lines, args.Error(1)
}

func (m *mockCostRepository) GetPeriodTotals(ctx context.Context, period entity.CostPeriod) ([]entity.CostLine, error) {
	args := m.Called(ctx, period)
	lines, _ := args.Get(0).([]entity.CostLine)
	return lines, args.Error(1)
}

func (m *mockCostRepository) GetForecast(ctx context.Context, period entity.CostPeriod) (entity.CostLine, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(entity.CostLine), args.Error(1)
}

func (m *mockCostRepository) GetBudgets(ctx context.Context, accountID string) ([]entity.BudgetInfo, error) {
	args := m.Called(ctx, accountID)
	budgets, _ := args.Get(0).([]entity.BudgetInfo)
	return budgets, args.Error(1)
}

func (m *mockCostRepository) GetAccountID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockMailRepository struct {
	mock.Mock
}

func (m *mockMailRepository) SendEmail(ctx context.Context, email entity.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type mockArchiveRepository struct {
	mock.Mock
}

func (m *mockArchiveRepository) Store(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) RenderHTML(report entity.CostReport) (string, error) {
	args := m.Called(report)
	return args.String(0), args.Error(1)
}
