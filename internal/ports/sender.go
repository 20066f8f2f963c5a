package ports

import (
	"context"

	"github.com/bft-labs/docship/internal/domain"
)

// Sender delivers signed payloads.
type Sender interface {
	// Send makes exactly one delivery attempt.
	// Returns nil on success, error on failure. Retrying is left to the caller.
	Send(ctx context.Context, signed domain.SignedContent) error
}
