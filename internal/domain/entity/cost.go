package entity

import "time"

// DateLayout is the date format used by Cost Explorer time periods.
const DateLayout = "2006-01-02"

// CostPeriod is a half-open date range [Start, End).
type CostPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// StartDate returns the start of the period as YYYY-MM-DD.
func (p CostPeriod) StartDate() string {
	return p.Start.Format(DateLayout)
}

// EndDate returns the end of the period as YYYY-MM-DD.
func (p CostPeriod) EndDate() string {
	return p.End.Format(DateLayout)
}

// String returns "start to end".
func (p CostPeriod) String() string {
	return p.StartDate() + " to " + p.EndDate()
}

// CostLine is a raw amount returned by the billing API, before parsing.
type CostLine struct {
	Key    string `json:"key"`
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

// ServiceCost represents a cost amount for a specific AWS service.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Cost        float64 `json:"cost"`
}

// CostSummary holds the aggregated figures shown in the report header
// and the per-service breakdown.
type CostSummary struct {
	Total          float64       `json:"month_to_date"`
	Daily          float64       `json:"last_24h"`
	Forecast       float64       `json:"forecast"`
	MaxServiceCost float64       `json:"-"`
	Services       []ServiceCost `json:"services"`
}

// BarWidth returns the width, in percent, of the bar for the given amount.
func (s CostSummary) BarWidth(amount float64) float64 {
	if s.MaxServiceCost <= 0 {
		return 0
	}
	width := amount / s.MaxServiceCost * 100
	switch {
	case width < 0:
		return 0
	case width > 100:
		return 100
	}
	return width
}

// ReportPeriods groups the three periods queried for a report.
type ReportPeriods struct {
	MonthToDate CostPeriod `json:"month_to_date"`
	PriorDay    CostPeriod `json:"prior_day"`
	Forecast    CostPeriod `json:"forecast"`
}

// CostReport contains everything needed to render or export a report.
type CostReport struct {
	AccountID   string        `json:"account_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Periods     ReportPeriods `json:"periods"`
	Summary     CostSummary   `json:"summary"`
	Budgets     []BudgetInfo  `json:"budgets,omitempty"`
}

// ReportDate returns the report date as YYYY-MM-DD.
func (r CostReport) ReportDate() string {
	return r.GeneratedAt.Format(DateLayout)
}
