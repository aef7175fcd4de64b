package cli

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/pkg/console"
	"github.com/diillson/aws-cost-report/pkg/currency"
)

// displayReport mostra o resumo, as barras por serviço e os orçamentos.
func (app *CLIApp) displayReport(report entity.CostReport) {
	summary := report.Summary

	table := app.console.CreateTable()
	table.AddColumn("AWS Account ID")
	table.AddColumn("Month-to-Date Cost")
	table.AddColumn("Last 24h Cost")
	table.AddColumn("Forecasted Monthly Cost")
	table.AddRow(
		console.BrightCyan(report.AccountID),
		console.BrightGreen(currency.FormatUSD(summary.Total)),
		currency.FormatUSD(summary.Daily),
		currency.FormatUSD(summary.Forecast),
	)

	pterm.DefaultSection.Println(fmt.Sprintf("AWS Cost Summary - %s", report.ReportDate()))
	pterm.Info.Printfln("Month-to-date period: %s | Forecast period: %s", report.Periods.MonthToDate, report.Periods.Forecast)
	fmt.Println(table.Render())

	app.console.DisplayServiceBars(summary)

	if len(report.Budgets) > 0 {
		fmt.Println(budgetTable(report.Budgets).Render())
	}
}

func budgetTable(budgets []entity.BudgetInfo) *console.Table {
	table := console.NewTable()
	table.AddColumn("Budget")
	table.AddColumn("Limit")
	table.AddColumn("Actual")
	table.AddColumn("Forecast")
	table.AddColumn("Used")

	for _, b := range budgets {
		used := currency.FormatPercent(b.UsedPercent()) + "%"
		if b.Exceeded() {
			used = console.BoldRed(used + " (over budget)")
		}
		table.AddRow(
			b.Name,
			currency.FormatUSD(b.Limit),
			currency.FormatUSD(b.Actual),
			currency.FormatUSD(b.Forecast),
			used,
		)
	}
	return table
}
