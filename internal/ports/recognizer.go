package ports

import (
	"context"

	"github.com/bft-labs/docship/internal/domain"
)

// Recognizer converts a raw file into a structured document.
type Recognizer interface {
	// Recognize parses the file.
	// Returns an error wrapping domain.ErrRecognition when the file is not a
	// recognizable document.
	Recognize(ctx context.Context, file domain.File) (domain.Document, error)
}
