package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/pkg/currency"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// HTMLRenderer implementa o ReportRenderer com html/template, que escapa
// todos os valores interpolados (nomes de serviço, valores e larguras).
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer faz o parse do template embutido.
func NewHTMLRenderer() (repository.ReportRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type serviceRow struct {
	Name     string
	Cost     string
	BarWidth string
}

type budgetRow struct {
	Name     string
	Limit    string
	Actual   string
	Forecast string
	Exceeded bool
}

type reportView struct {
	AccountID   string
	Period      string
	GeneratedAt string
	Total       string
	Daily       string
	Forecast    string
	Services    []serviceRow
	Budgets     []budgetRow
}

// RenderHTML renderiza o relatório como documento HTML estático.
func (r *HTMLRenderer) RenderHTML(report entity.CostReport) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, newReportView(report)); err != nil {
		return "", fmt.Errorf("error executing report template: %w", err)
	}
	return buf.String(), nil
}

func newReportView(report entity.CostReport) reportView {
	summary := report.Summary
	view := reportView{
		AccountID:   report.AccountID,
		Period:      report.Periods.MonthToDate.String(),
		GeneratedAt: report.GeneratedAt.UTC().Format(time.RFC3339),
		Total:       currency.FormatUSD(summary.Total),
		Daily:       currency.FormatUSD(summary.Daily),
		Forecast:    currency.FormatUSD(summary.Forecast),
		Services:    make([]serviceRow, 0, len(summary.Services)),
	}

	for _, sc := range summary.Services {
		view.Services = append(view.Services, serviceRow{
			Name:     sc.ServiceName,
			Cost:     currency.FormatUSD(sc.Cost),
			BarWidth: currency.FormatPercent(summary.BarWidth(sc.Cost)),
		})
	}

	for _, b := range report.Budgets {
		view.Budgets = append(view.Budgets, budgetRow{
			Name:     b.Name,
			Limit:    currency.FormatUSD(b.Limit),
			Actual:   currency.FormatUSD(b.Actual),
			Forecast: currency.FormatUSD(b.Forecast),
			Exceeded: b.Exceeded(),
		})
	}

	return view
}
