package app

import (
	"fmt"
	"time"

	"github.com/bft-labs/docship/internal/domain"
	"github.com/bft-labs/docship/internal/ports"
)

// DefaultAcceptedFormats lists the document format versions accepted when
// no whitelist is configured.
var DefaultAcceptedFormats = []string{"4.0", "3.1"}

// Validator decides whether a recognized document may be sent.
type Validator struct {
	formats map[string]struct{}
	clock   ports.Clock
}

// NewValidator creates a validator accepting the given formats.
// An empty list falls back to DefaultAcceptedFormats and a nil clock to SystemClock.
func NewValidator(formats []string, clock ports.Clock) *Validator {
	if clock == nil {
		clock = SystemClock{}
	}
	if len(formats) == 0 {
		formats = DefaultAcceptedFormats
	}
	set := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		set[f] = struct{}{}
	}
	return &Validator{formats: set, clock: clock}
}

// CheckFormat reports whether the document format is whitelisted.
// Comparison is exact: no trimming, no case folding.
func (v *Validator) CheckFormat(doc domain.Document) bool {
	_, ok := v.formats[doc.Format]
	return ok
}

// CheckActual reports whether the document was created less than one
// calendar month ago. The month is added with time.AddDate, so Jan 31
// becomes Mar 3 (Mar 2 in leap years) rather than the end of February.
func (v *Validator) CheckActual(doc domain.Document) bool {
	return doc.Created.AddDate(0, 1, 0).After(v.clock.Now())
}

// Validate runs CheckFormat then CheckActual.
func (v *Validator) Validate(doc domain.Document) error {
	if !v.CheckFormat(doc) {
		return fmt.Errorf("%w: %q", domain.ErrFormatRejected, doc.Format)
	}
	if !v.CheckActual(doc) {
		return fmt.Errorf("%w: created %s", domain.ErrStaleDocument, doc.Created.Format(time.RFC3339))
	}
	return nil
}
