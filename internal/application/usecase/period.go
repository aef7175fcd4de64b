package usecase

import (
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// BuildReportPeriods deriva os três períodos consultados a partir da data atual (UTC).
// Todos os períodos são [Start, End), como o Cost Explorer espera.
func BuildReportPeriods(now time.Time, forecastDays int) entity.ReportPeriods {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	startOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	// No primeiro dia do mês o intervalo seria vazio, e o Cost Explorer rejeita Start == End
	monthEnd := today
	if monthEnd.Equal(startOfMonth) {
		monthEnd = monthEnd.AddDate(0, 0, 1)
	}

	return entity.ReportPeriods{
		MonthToDate: entity.CostPeriod{Start: startOfMonth, End: monthEnd},
		PriorDay:    entity.CostPeriod{Start: yesterday, End: today},
		Forecast:    entity.CostPeriod{Start: today, End: today.AddDate(0, 0, forecastDays)},
	}
}
