package repository

import (
	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

type ExportRepository interface {
	ExportToHTML(html string, filename, outputDir string) (string, error)
	ExportToCSV(report entity.CostReport, filename, outputDir string) (string, error)
	ExportToJSON(report entity.CostReport, filename, outputDir string) (string, error)
	ExportToPDF(report entity.CostReport, filename, outputDir string) (string, error)
}
