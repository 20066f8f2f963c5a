package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/docship/internal/domain"
)

// ReportFileRepository implements ports.ReportRepository using one JSON file per batch.
type ReportFileRepository struct {
	dir string
}

// NewReportFileRepository creates a new ReportFileRepository for the given directory.
func NewReportFileRepository(dir string) *ReportFileRepository {
	return &ReportFileRepository{dir: dir}
}

// Load retrieves a saved report from disk.
func (r *ReportFileRepository) Load(ctx context.Context, batchID string) (domain.Report, error) {
	data, err := os.ReadFile(r.Path(batchID))
	if err != nil {
		return domain.Report{}, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.Report{}, fmt.Errorf("decode report %s: %w", batchID, err)
	}

	return report, nil
}

// Save persists the report atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *ReportFileRepository) Save(ctx context.Context, report domain.Report) error {
	if report.BatchID == "" {
		return fmt.Errorf("report has no batch id")
	}

	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path(report.BatchID)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Path returns the full path of the report file for a batch.
func (r *ReportFileRepository) Path(batchID string) string {
	return filepath.Join(r.dir, "report-"+batchID+".json")
}
