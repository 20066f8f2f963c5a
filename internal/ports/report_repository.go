package ports

import (
	"context"

	"github.com/bft-labs/docship/internal/domain"
)

// ReportRepository handles batch report persistence.
// Implementations persist reports atomically.
type ReportRepository interface {
	// Save persists the report.
	// The implementation should use atomic writes (e.g., write to temp file, then rename)
	// to prevent corruption on crash.
	Save(ctx context.Context, report domain.Report) error

	// Load retrieves a previously saved report by batch ID.
	Load(ctx context.Context, batchID string) (domain.Report, error)
}
