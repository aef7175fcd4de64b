package repository

import (
	"context"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// MailRepository sends a rendered report. It returns the provider message ID.
type MailRepository interface {
	SendEmail(ctx context.Context, email entity.Email) (string, error)
}
