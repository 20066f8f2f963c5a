package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bft-labs/docship/internal/domain"
	"github.com/bft-labs/docship/internal/ports"
	"github.com/bft-labs/docship/pkg/log"
)

// Service runs one batch end to end: list the inbox, send the files,
// persist the report and archive what was delivered.
type Service struct {
	source       ports.FileSource
	orchestrator *Orchestrator
	reports      ports.ReportRepository
	archive      ports.Archive
	clock        ports.Clock
	logger       log.Logger
}

// NewService creates a new service. reports and archive may be nil.
func NewService(
	source ports.FileSource,
	orchestrator *Orchestrator,
	reports ports.ReportRepository,
	archive ports.Archive,
	clock ports.Clock,
	logger log.Logger,
) *Service {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Service{
		source:       source,
		orchestrator: orchestrator,
		reports:      reports,
		archive:      archive,
		clock:        clock,
		logger:       logger,
	}
}

// RunBatch processes the files currently in the source.
// Only setup failures (listing the inbox) are returned as errors; report and
// archive failures are logged because the documents have already been sent.
func (s *Service) RunBatch(ctx context.Context, cert domain.Certificate) (domain.BatchResult, domain.Report, error) {
	files, err := s.source.List(ctx)
	if err != nil {
		return domain.BatchResult{}, domain.Report{}, fmt.Errorf("list files: %w", err)
	}

	batchID := uuid.NewString()
	if len(files) == 0 {
		s.logger.Debug("no files to send", log.String("batch", batchID))
		return domain.NewBatchResult(0), domain.Report{BatchID: batchID, CertificateID: cert.ID}, nil
	}

	started := s.clock.Now()
	result := s.orchestrator.SendFiles(ctx, files, cert)
	finished := s.clock.Now()

	report := domain.NewReport(batchID, cert.ID, started, finished, result)

	s.logger.Info("batch complete",
		log.String("batch", batchID),
		log.Int("total", result.Total),
		log.Int("sent", result.Sent),
		log.Int("skipped", len(result.Skipped)),
		log.Duration("duration", finished.Sub(started)),
	)

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			s.logger.Error("failed to save report", log.String("batch", batchID), log.Err(err))
		}
	}

	if s.archive != nil {
		if delivered := result.Delivered(files); len(delivered) > 0 {
			if err := s.archive.Move(ctx, delivered); err != nil {
				s.logger.Error("failed to archive sent files", log.String("batch", batchID), log.Err(err))
			}
		}
	}

	return result, report, nil
}
