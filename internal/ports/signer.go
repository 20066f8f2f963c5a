package ports

import (
	"context"

	"github.com/bft-labs/docship/internal/domain"
)

// Signer produces a signed payload from document content.
type Signer interface {
	// Sign signs content with the certificate.
	// Returns an error wrapping domain.ErrSigning if the certificate is unusable.
	Sign(ctx context.Context, content []byte, cert domain.Certificate) (domain.SignedContent, error)
}
