package aws

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
)

const (
	unblendedCostMetric = "UnblendedCost"
	serviceDimension    = "SERVICE"
)

var errEmptyForecast = errors.New("cost forecast returned no total")

type costExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
	GetCostForecast(ctx context.Context, params *costexplorer.GetCostForecastInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostForecastOutput, error)
}

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// CostRepositoryImpl implementa o CostRepository com Cost Explorer, Budgets e STS.
type CostRepositoryImpl struct {
	clients *ClientFactory
	region  string

	// Clientes fixos, usados nos testes; quando nil vêm da ClientFactory.
	ce      costExplorerAPI
	budgets budgets.DescribeBudgetsAPIClient
	sts     stsAPI
}

// NewCostRepository cria uma nova implementação do CostRepository. region é
// a região do endpoint do Cost Explorer.
func NewCostRepository(clients *ClientFactory, region string) repository.CostRepository {
	if region == "" {
		region = globalBillingRegion
	}
	return &CostRepositoryImpl{clients: clients, region: region}
}

func (r *CostRepositoryImpl) costExplorerClient(ctx context.Context) (costExplorerAPI, error) {
	if r.ce != nil {
		return r.ce, nil
	}
	client, err := r.clients.getServiceClient(ctx, r.region, serviceCostExplorer)
	if err != nil {
		return nil, err
	}
	return client.(*costexplorer.Client), nil
}

func (r *CostRepositoryImpl) budgetsClient(ctx context.Context) (budgets.DescribeBudgetsAPIClient, error) {
	if r.budgets != nil {
		return r.budgets, nil
	}
	client, err := r.clients.getServiceClient(ctx, globalBillingRegion, serviceBudgets)
	if err != nil {
		return nil, err
	}
	return client.(*budgets.Client), nil
}

func (r *CostRepositoryImpl) stsClient(ctx context.Context) (stsAPI, error) {
	if r.sts != nil {
		return r.sts, nil
	}
	client, err := r.clients.getServiceClient(ctx, globalBillingRegion, serviceSTS)
	if err != nil {
		return nil, err
	}
	return client.(*sts.Client), nil
}

func dateInterval(period entity.CostPeriod) *ceTypes.DateInterval {
	return &ceTypes.DateInterval{
		Start: aws.String(period.StartDate()),
		End:   aws.String(period.EndDate()),
	}
}

// GetServiceCosts retorna os grupos por serviço do primeiro bucket mensal,
// seguindo o NextPageToken quando houver muitos serviços.
func (r *CostRepositoryImpl) GetServiceCosts(ctx context.Context, period entity.CostPeriod) ([]entity.CostLine, error) {
	client, err := r.costExplorerClient(ctx)
	if err != nil {
		return nil, err
	}

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod:  dateInterval(period),
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{unblendedCostMetric},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String(serviceDimension)},
		},
	}

	var lines []entity.CostLine
	for {
		result, err := client.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, err
		}

		if len(result.ResultsByTime) > 0 {
			for _, group := range result.ResultsByTime[0].Groups {
				line, err := groupLine(group)
				if err != nil {
					return nil, err
				}
				lines = append(lines, line)
			}
		}

		if aws.ToString(result.NextPageToken) == "" {
			break
		}
		input.NextPageToken = result.NextPageToken
	}

	return lines, nil
}

func groupLine(group ceTypes.Group) (entity.CostLine, error) {
	name := "Unknown"
	if len(group.Keys) > 0 {
		name = group.Keys[0]
	}
	metric, ok := group.Metrics[unblendedCostMetric]
	if !ok || metric.Amount == nil {
		return entity.CostLine{}, fmt.Errorf("missing %s for service %q", unblendedCostMetric, name)
	}
	return entity.CostLine{Key: name, Amount: *metric.Amount, Unit: aws.ToString(metric.Unit)}, nil
}

// GetPeriodTotals retorna o total não agrupado de cada bucket diário do período.
func (r *CostRepositoryImpl) GetPeriodTotals(ctx context.Context, period entity.CostPeriod) ([]entity.CostLine, error) {
	client, err := r.costExplorerClient(ctx)
	if err != nil {
		return nil, err
	}

	result, err := client.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod:  dateInterval(period),
		Granularity: ceTypes.GranularityDaily,
		Metrics:     []string{unblendedCostMetric},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entity.CostLine, 0, len(result.ResultsByTime))
	for _, bucket := range result.ResultsByTime {
		key := ""
		if bucket.TimePeriod != nil {
			key = aws.ToString(bucket.TimePeriod.Start)
		}
		metric, ok := bucket.Total[unblendedCostMetric]
		if !ok || metric.Amount == nil {
			return nil, fmt.Errorf("missing %s total for bucket %q", unblendedCostMetric, key)
		}
		lines = append(lines, entity.CostLine{Key: key, Amount: *metric.Amount, Unit: aws.ToString(metric.Unit)})
	}

	return lines, nil
}

// GetForecast retorna a previsão de custo total para o período.
func (r *CostRepositoryImpl) GetForecast(ctx context.Context, period entity.CostPeriod) (entity.CostLine, error) {
	client, err := r.costExplorerClient(ctx)
	if err != nil {
		return entity.CostLine{}, err
	}

	result, err := client.GetCostForecast(ctx, &costexplorer.GetCostForecastInput{
		TimePeriod:  dateInterval(period),
		Metric:      ceTypes.MetricUnblendedCost,
		Granularity: ceTypes.GranularityMonthly,
	})
	if err != nil {
		return entity.CostLine{}, err
	}

	if result.Total == nil || result.Total.Amount == nil {
		return entity.CostLine{}, errEmptyForecast
	}

	return entity.CostLine{
		Key:    "Forecast",
		Amount: *result.Total.Amount,
		Unit:   aws.ToString(result.Total.Unit),
	}, nil
}

// GetBudgets lista os orçamentos da conta com gasto atual e previsto.
func (r *CostRepositoryImpl) GetBudgets(ctx context.Context, accountID string) ([]entity.BudgetInfo, error) {
	client, err := r.budgetsClient(ctx)
	if err != nil {
		return nil, err
	}

	paginator := budgets.NewDescribeBudgetsPaginator(client, &budgets.DescribeBudgetsInput{
		AccountId: aws.String(accountID),
	})

	budgetsData := []entity.BudgetInfo{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing budgets for account %s: %w", accountID, err)
		}

		for _, budget := range page.Budgets {
			b := entity.BudgetInfo{Name: aws.ToString(budget.BudgetName)}
			if budget.BudgetLimit != nil {
				b.Limit, _ = strconv.ParseFloat(aws.ToString(budget.BudgetLimit.Amount), 64)
			}
			if budget.CalculatedSpend != nil {
				if budget.CalculatedSpend.ActualSpend != nil {
					b.Actual, _ = strconv.ParseFloat(aws.ToString(budget.CalculatedSpend.ActualSpend.Amount), 64)
				}
				if budget.CalculatedSpend.ForecastedSpend != nil {
					b.Forecast, _ = strconv.ParseFloat(aws.ToString(budget.CalculatedSpend.ForecastedSpend.Amount), 64)
				}
			}
			budgetsData = append(budgetsData, b)
		}
	}

	return budgetsData, nil
}

// GetAccountID resolve o ID da conta via STS; usado quando não há ARN de função.
func (r *CostRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	client, err := r.stsClient(ctx)
	if err != nil {
		return "", err
	}

	result, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}
