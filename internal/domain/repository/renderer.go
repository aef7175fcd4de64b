package repository

import "github.com/diillson/aws-cost-report/internal/domain/entity"

// ReportRenderer turns a report into an HTML document.
type ReportRenderer interface {
	RenderHTML(report entity.CostReport) (string, error)
}
