package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/docship/internal/domain"
	"github.com/bft-labs/docship/internal/ports"
	"github.com/bft-labs/docship/pkg/log"
)

// OrchestratorConfig contains configuration for the batch pipeline.
type OrchestratorConfig struct {
	// Workers bounds how many files are processed at once. Values below 1 mean 1.
	Workers int
}

// Orchestrator pipes every file of a batch through recognize, validate,
// sign and send, independently of the other files.
type Orchestrator struct {
	config     OrchestratorConfig
	recognizer ports.Recognizer
	validator  *Validator
	signer     ports.Signer
	sender     ports.Sender
	logger     log.Logger
}

// NewOrchestrator creates a new orchestrator with the given dependencies.
func NewOrchestrator(
	config OrchestratorConfig,
	recognizer ports.Recognizer,
	validator *Validator,
	signer ports.Signer,
	sender ports.Sender,
	logger log.Logger,
) *Orchestrator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if validator == nil {
		validator = NewValidator(nil, SystemClock{})
	}
	return &Orchestrator{
		config:     config,
		recognizer: recognizer,
		validator:  validator,
		signer:     signer,
		sender:     sender,
		logger:     logger,
	}
}

// SendFiles processes every file and returns the ones that were skipped.
// Per-file failures never abort the batch; the skipped list keeps input order
// whatever order the workers finish in.
func (o *Orchestrator) SendFiles(ctx context.Context, files []domain.File, cert domain.Certificate) domain.BatchResult {
	outcomes := make([]error, len(files))

	// A plain Group: one file failing must not cancel the others.
	var g errgroup.Group
	g.SetLimit(o.config.Workers)
	for i := range files {
		i := i
		g.Go(func() error {
			outcomes[i] = o.process(ctx, files[i], cert)
			return nil
		})
	}
	_ = g.Wait()

	result := domain.NewBatchResult(len(files))
	for i, err := range outcomes {
		if err == nil {
			result.AddSent()
			continue
		}
		result.AddSkip(files[i], err)
		o.logger.Warn("file skipped",
			log.String("file", files[i].Name),
			log.String("reason", string(domain.ReasonOf(err))),
			log.Err(err),
		)
	}
	return result
}

// process runs one file through the pipeline. A panic in a collaborator is
// reported as a failure of the stage that was running.
func (o *Orchestrator) process(ctx context.Context, file domain.File, cert domain.Certificate) (err error) {
	stage := domain.ErrRecognition
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", stage, r)
		}
	}()

	doc, err := o.recognizer.Recognize(ctx, file)
	if err != nil {
		return domain.Wrap(domain.ErrRecognition, err)
	}

	// The format check is a map lookup; only the freshness check calls out (to the clock).
	stage = domain.ErrStaleDocument
	if err := o.validator.Validate(doc); err != nil {
		return err
	}

	stage = domain.ErrSigning
	signed, err := o.signer.Sign(ctx, doc.Content, cert)
	if err != nil {
		return domain.Wrap(domain.ErrSigning, err)
	}

	stage = domain.ErrDelivery
	start := time.Now()
	if err := o.sender.Send(ctx, signed); err != nil {
		return domain.Wrap(domain.ErrDelivery, err)
	}

	o.logger.Debug("file sent",
		log.String("file", file.Name),
		log.String("format", doc.Format),
		log.Int("bytes", len(signed)),
		log.Duration("duration", time.Since(start)),
	)
	return nil
}
