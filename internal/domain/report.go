package domain

import "time"

// Report is the persisted summary of one batch run.
type Report struct {
	// BatchID uniquely identifies the batch run
	BatchID string `json:"batch_id"`

	// CertificateID is the certificate the batch was signed with
	CertificateID string `json:"certificate_id"`

	// StartedAt is when the batch started
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the last file finished processing
	FinishedAt time.Time `json:"finished_at"`

	// Total is the number of files in the batch
	Total int `json:"total"`

	// Sent is the number of files delivered
	Sent int `json:"sent"`

	// Skipped lists the skipped files in input order
	Skipped []SkippedEntry `json:"skipped"`
}

// SkippedEntry is the serialized form of a Skip.
type SkippedEntry struct {
	Name   string     `json:"name"`
	Reason SkipReason `json:"reason"`
	Error  string     `json:"error,omitempty"`
}

// NewReport builds a report from a batch result.
func NewReport(batchID, certID string, startedAt, finishedAt time.Time, r BatchResult) Report {
	entries := make([]SkippedEntry, len(r.Skips))
	for i, s := range r.Skips {
		entries[i] = SkippedEntry{Name: s.File.Name, Reason: s.Reason}
		if s.Err != nil {
			entries[i].Error = s.Err.Error()
		}
	}
	return Report{
		BatchID:       batchID,
		CertificateID: certID,
		StartedAt:     startedAt,
		FinishedAt:    finishedAt,
		Total:         r.Total,
		Sent:          r.Sent,
		Skipped:       entries,
	}
}
