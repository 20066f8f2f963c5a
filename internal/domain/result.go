package domain

import "errors"

// SkipReason names the pipeline stage at which a file was dropped.
type SkipReason string

const (
	ReasonRecognitionFailure SkipReason = "recognition_failure"
	ReasonFormatRejected     SkipReason = "format_rejected"
	ReasonStaleDocument      SkipReason = "stale_document"
	ReasonSigningFailure     SkipReason = "signing_failure"
	ReasonDeliveryFailure    SkipReason = "delivery_failure"
	ReasonUnknown            SkipReason = "unknown"
)

// ReasonOf maps an error returned by the pipeline to its SkipReason.
func ReasonOf(err error) SkipReason {
	switch {
	case errors.Is(err, ErrRecognition):
		return ReasonRecognitionFailure
	case errors.Is(err, ErrFormatRejected):
		return ReasonFormatRejected
	case errors.Is(err, ErrStaleDocument):
		return ReasonStaleDocument
	case errors.Is(err, ErrSigning):
		return ReasonSigningFailure
	case errors.Is(err, ErrDelivery):
		return ReasonDeliveryFailure
	default:
		return ReasonUnknown
	}
}

// Skip records why a single file did not make it through the pipeline.
type Skip struct {
	File   File
	Reason SkipReason
	Err    error
}

// BatchResult is the outcome of one SendFiles call.
// Skipped and Skips are in input order; sent files are not recorded.
type BatchResult struct {
	// Skipped contains the files that were not delivered
	Skipped []File

	// Skips carries the reason for each entry of Skipped
	Skips []Skip

	// Total is the number of files in the batch
	Total int

	// Sent is the number of files delivered
	Sent int
}

// NewBatchResult creates an empty result for a batch of total files.
func NewBatchResult(total int) BatchResult {
	return BatchResult{
		Skipped: make([]File, 0),
		Skips:   make([]Skip, 0),
		Total:   total,
	}
}

// AddSkip records a skipped file. Callers must add skips in input order.
func (r *BatchResult) AddSkip(f File, err error) {
	r.Skipped = append(r.Skipped, f)
	r.Skips = append(r.Skips, Skip{File: f, Reason: ReasonOf(err), Err: err})
}

// AddSent counts a delivered file.
func (r *BatchResult) AddSent() {
	r.Sent++
}

// SkippedFiles returns the skipped files in input order.
func (r BatchResult) SkippedFiles() []File {
	return r.Skipped
}

// HasSkips returns true if at least one file was skipped.
func (r BatchResult) HasSkips() bool {
	return len(r.Skipped) > 0
}

// Delivered returns the files of input that are not in the skipped set.
// File names are unique within a batch.
func (r BatchResult) Delivered(input []File) []File {
	skipped := make(map[string]struct{}, len(r.Skipped))
	for _, f := range r.Skipped {
		skipped[f.Name] = struct{}{}
	}
	out := make([]File, 0, len(input))
	for _, f := range input {
		if _, ok := skipped[f.Name]; !ok {
			out = append(out, f)
		}
	}
	return out
}
