package repository

import "context"

// ArchiveRepository stores a copy of a rendered report.
type ArchiveRepository interface {
	Store(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
