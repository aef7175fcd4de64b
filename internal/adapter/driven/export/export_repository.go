package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/pkg/currency"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToHTML grava o documento já renderizado (o mesmo corpo do email).
func (r *ExportRepositoryImpl) ExportToHTML(html string, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToCSV(report entity.CostReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	summary := report.Summary
	records := [][]string{
		{"AWS Account ID", "Service", "Cost (USD)", "Cost Distribution (%)"},
	}
	for _, sc := range summary.Services {
		records = append(records, []string{
			report.AccountID,
			sc.ServiceName,
			fmt.Sprintf("%.2f", sc.Cost),
			currency.FormatPercent(summary.BarWidth(sc.Cost)),
		})
	}
	records = append(records,
		[]string{report.AccountID, "Month-to-Date Total", fmt.Sprintf("%.2f", summary.Total), ""},
		[]string{report.AccountID, "Last 24h", fmt.Sprintf("%.2f", summary.Daily), ""},
		[]string{report.AccountID, "Forecast", fmt.Sprintf("%.2f", summary.Forecast), ""},
	)

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.CostReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.CostReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	barColor := [3]int{92, 184, 92}

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  AWS Cost Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Account ID: %s  |  Period: %s", report.AccountID, report.Periods.MonthToDate)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Resumo: três colunas
	drawSectionTitle("Cost Summary")
	colWidth := 190.0 / 3
	summary := report.Summary
	pdf.SetFont("Arial", "B", 10)
	for _, label := range []string{"Month-to-Date Cost", "Last 24h Cost", "Forecasted Monthly Cost"} {
		pdf.CellFormat(colWidth, 7, tr(label), "B", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "B", 16)
	for _, value := range []float64{summary.Total, summary.Daily, summary.Forecast} {
		pdf.CellFormat(colWidth, 12, tr(currency.FormatUSD(value)), "", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(8)

	// Custo por serviço com barra proporcional
	drawSectionTitle("Service-wise Cost Breakdown")
	nameWidth, costWidth, barWidth := 80.0, 35.0, 75.0
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(nameWidth, 7, "Service", "B", 0, "L", false, 0, "")
	pdf.CellFormat(costWidth, 7, "Cost (USD)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(barWidth, 7, "Cost Distribution", "B", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, sc := range summary.Services {
		name := sc.ServiceName
		if len(name) > 48 {
			name = name[:45] + "..."
		}
		pdf.CellFormat(nameWidth, 7, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(costWidth, 7, tr(currency.FormatUSD(sc.Cost)), "", 0, "R", false, 0, "")

		x, y := pdf.GetX(), pdf.GetY()
		w := (barWidth - 4) * summary.BarWidth(sc.Cost) / 100
		pdf.SetFillColor(barColor[0], barColor[1], barColor[2])
		if w > 0 {
			pdf.Rect(x+2, y+1.5, w, 4, "F")
		}
		pdf.Ln(7)
	}
	pdf.Ln(8)

	if len(report.Budgets) > 0 {
		drawSectionTitle("Budgets")
		pdf.SetFont("Arial", "", 10)
		for _, b := range report.Budgets {
			line := fmt.Sprintf("%s: %s / %s (%s%%)", b.Name, currency.FormatUSD(b.Actual), currency.FormatUSD(b.Limit), currency.FormatPercent(b.UsedPercent()))
			if b.Exceeded() {
				pdf.SetTextColor(192, 0, 0)
			}
			pdf.MultiCell(190, 5, tr(line), "", "L", false)
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		}
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by AWS Cost Report | %s", report.GeneratedAt.Format(entity.DateLayout))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
