package docship

import (
	"github.com/bft-labs/docship/internal/ports"
	"github.com/bft-labs/docship/pkg/log"
)

// Option configures optional behavior of Docship.
type Option func(*options)

// options holds the optional collaborators for a Docship instance.
// Nil fields are replaced by the built-in adapters.
type options struct {
	httpClient ports.HTTPClient
	logger     log.Logger
	clock      ports.Clock
	recognizer ports.Recognizer
	signer     ports.Signer
	sender     ports.Sender
}

// WithHTTPClient sets a custom HTTP client for the built-in sender.
// If not provided, a default client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the time source used for freshness checks and reports.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRecognizer replaces the built-in TOML/JSON document recognizer.
func WithRecognizer(r Recognizer) Option {
	return func(o *options) {
		o.recognizer = r
	}
}

// WithSigner replaces the built-in ed25519 signer.
func WithSigner(s Signer) Option {
	return func(o *options) {
		o.signer = s
	}
}

// WithSender replaces the built-in HTTP sender. WithHTTPClient has no
// effect when a sender is given.
func WithSender(s Sender) Option {
	return func(o *options) {
		o.sender = s
	}
}
