package docship

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/bft-labs/docship/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/docship/internal/adapters/http"
	"github.com/bft-labs/docship/internal/adapters/recognizer"
	"github.com/bft-labs/docship/internal/adapters/signing"
	"github.com/bft-labs/docship/internal/app"
	"github.com/bft-labs/docship/internal/domain"
	"github.com/bft-labs/docship/internal/ports"
	"github.com/bft-labs/docship/internal/watch"
	"github.com/bft-labs/docship/pkg/log"
)

// Re-exported types so embedders do not need the internal packages.
type (
	File          = domain.File
	Document      = domain.Document
	Certificate   = domain.Certificate
	SignedContent = domain.SignedContent
	BatchResult   = domain.BatchResult
	Skip          = domain.Skip
	SkipReason    = domain.SkipReason
	Report        = domain.Report

	Recognizer = ports.Recognizer
	Signer     = ports.Signer
	Sender     = ports.Sender
	Clock      = ports.Clock
	HTTPClient = ports.HTTPClient

	Logger   = log.Logger
	LogField = log.Field
)

// Skip reasons.
const (
	RecognitionFailure = domain.ReasonRecognitionFailure
	FormatRejected     = domain.ReasonFormatRejected
	StaleDocument      = domain.ReasonStaleDocument
	SigningFailure     = domain.ReasonSigningFailure
	DeliveryFailure    = domain.ReasonDeliveryFailure
)

// Errors recorded on skips; check with errors.Is.
var (
	ErrRecognition    = domain.ErrRecognition
	ErrFormatRejected = domain.ErrFormatRejected
	ErrStaleDocument  = domain.ErrStaleDocument
	ErrSigning        = domain.ErrSigning
	ErrDelivery       = domain.ErrDelivery
	ErrInvalidConfig  = domain.ErrInvalidConfig
)

// ErrNoInbox is returned by Run and Watch when Config.InboxDir is empty.
var ErrNoInbox = errors.New("docship: inbox dir not configured")

// Docship ships documents. Use New to create an instance.
// A Docship is safe for concurrent use by SendFiles callers; Run and Watch
// should not be called concurrently on the same inbox.
type Docship struct {
	config       Config
	orchestrator *app.Orchestrator
	clock        ports.Clock
	logger       log.Logger
}

// New creates a new Docship instance with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Docship, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	clock := o.clock
	if clock == nil {
		clock = app.SystemClock{}
	}
	rec := o.recognizer
	if rec == nil {
		rec = recognizer.New()
	}
	signer := o.signer
	if signer == nil {
		signer = signing.NewSigner()
	}
	sender := o.sender
	if sender == nil {
		client := o.httpClient
		if client == nil {
			client = &http.Client{Timeout: cfg.HTTPTimeout}
		}
		sender = httpAdapter.NewSender(client, httpAdapter.SendMetadata{
			Hostname:   hostname(),
			AuthKey:    cfg.AuthKey,
			ServiceURL: cfg.ServiceURL,
		}, logger)
	}

	orchestrator := app.NewOrchestrator(
		app.OrchestratorConfig{Workers: cfg.Workers},
		rec,
		app.NewValidator(cfg.AcceptedFormats, clock),
		signer,
		sender,
		logger,
	)

	logger.Debug("docship configured",
		log.Strings("formats", cfg.AcceptedFormats),
		log.Int("workers", cfg.Workers),
		log.String("service", cfg.ServiceURL),
	)

	return &Docship{
		config:       cfg,
		orchestrator: orchestrator,
		clock:        clock,
		logger:       logger,
	}, nil
}

// SendFiles processes the given files with cert and returns the skipped ones
// in input order. Per-file failures never abort the call.
func (d *Docship) SendFiles(ctx context.Context, files []File, cert Certificate) BatchResult {
	return d.orchestrator.SendFiles(ctx, files, cert)
}

// Run ships every file currently in the inbox as one batch, writes the batch
// report and, when MoveSent is set, archives the delivered files.
func (d *Docship) Run(ctx context.Context, cert Certificate) (BatchResult, Report, error) {
	if d.config.InboxDir == "" {
		return BatchResult{}, Report{}, ErrNoInbox
	}
	return d.service(d.config.MoveSent).RunBatch(ctx, cert)
}

// Watch runs a batch immediately and again after each burst of inbox changes
// until ctx is done. onBatch, if not nil, is called after every batch.
// Delivered files are always archived in watch mode.
func (d *Docship) Watch(ctx context.Context, cert Certificate, onBatch func(BatchResult, Report)) error {
	if d.config.InboxDir == "" {
		return ErrNoInbox
	}
	svc := d.service(true)
	w := watch.New(watch.Config{
		Dir:           d.config.InboxDir,
		DebounceDelay: d.config.Debounce,
		Ignore:        fs.Ignored,
	}, d.logger)

	return w.Run(ctx, func(ctx context.Context) {
		result, report, err := svc.RunBatch(ctx, cert)
		if err != nil {
			d.logger.Error("batch failed", log.Err(err))
			return
		}
		if onBatch != nil && result.Total > 0 {
			onBatch(result, report)
		}
	})
}

func (d *Docship) service(archive bool) *app.Service {
	inbox := fs.NewInbox(d.config.InboxDir)
	var archiver ports.Archive
	if archive {
		archiver = inbox
	}
	return app.NewService(
		inbox,
		d.orchestrator,
		fs.NewReportFileRepository(d.config.ReportDir),
		archiver,
		d.clock,
		d.logger,
	)
}

// hostname returns the current hostname.
func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
