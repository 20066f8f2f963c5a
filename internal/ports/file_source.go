package ports

import (
	"context"

	"github.com/bft-labs/docship/internal/domain"
)

// FileSource lists the files that make up the next batch.
type FileSource interface {
	// List returns the pending files in a stable order.
	List(ctx context.Context) ([]domain.File, error)
}

// Archive moves delivered files out of the way so they are not sent again.
type Archive interface {
	Move(ctx context.Context, files []domain.File) error
}
