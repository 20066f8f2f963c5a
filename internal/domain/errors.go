package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the docship domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrRecognition is returned when a file cannot be recognized into a document.
	ErrRecognition = errors.New("docship: recognition failed")

	// ErrFormatRejected is returned when a document format is not accepted.
	ErrFormatRejected = errors.New("docship: format rejected")

	// ErrStaleDocument is returned when a document is older than the freshness window.
	ErrStaleDocument = errors.New("docship: stale document")

	// ErrSigning is returned when a document cannot be signed.
	ErrSigning = errors.New("docship: signing failed")

	// ErrDelivery is returned when a signed document could not be delivered.
	ErrDelivery = errors.New("docship: delivery failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("docship: invalid configuration")
)

// Wrap tags err with the sentinel kind unless it already carries it.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
