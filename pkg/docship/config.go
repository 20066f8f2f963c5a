package docship

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bft-labs/docship/internal/app"
	"github.com/bft-labs/docship/internal/domain"
)

// DefaultServiceURL is the default ingestion endpoint.
const DefaultServiceURL = "https://api.docship.io"

// Config configures a Docship instance.
type Config struct {
	// InboxDir is the directory batches are read from. Required for Run and Watch.
	InboxDir string

	// ReportDir receives one JSON report per batch. Defaults to InboxDir/.reports.
	ReportDir string

	// ServiceURL is the base URL of the ingestion service.
	ServiceURL string

	// AuthKey is sent as a bearer token.
	AuthKey string

	// AcceptedFormats lists the document format versions that may be sent.
	AcceptedFormats []string

	// Workers bounds how many files are processed concurrently.
	Workers int

	// HTTPTimeout bounds each upload of the built-in sender.
	HTTPTimeout time.Duration

	// MoveSent moves delivered files into InboxDir/sent after each batch.
	MoveSent bool

	// Debounce is how long Watch waits after the last inbox change.
	Debounce time.Duration
}

// SetDefaults fills zero fields with default values.
func (c *Config) SetDefaults() {
	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")
	if len(c.AcceptedFormats) == 0 {
		c.AcceptedFormats = append([]string(nil), app.DefaultAcceptedFormats...)
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 15 * time.Second
	}
	if c.Debounce == 0 {
		c.Debounce = 500 * time.Millisecond
	}
	if c.ReportDir == "" && c.InboxDir != "" {
		c.ReportDir = filepath.Join(c.InboxDir, ".reports")
	}
}

// Validate reports configuration errors. Call SetDefaults first.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive", domain.ErrInvalidConfig)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: http timeout must not be negative", domain.ErrInvalidConfig)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", domain.ErrInvalidConfig)
	}
	if c.InboxDir != "" && filepath.Clean(c.ReportDir) == filepath.Clean(c.InboxDir) {
		return fmt.Errorf("%w: report dir must differ from inbox dir", domain.ErrInvalidConfig)
	}
	for _, f := range c.AcceptedFormats {
		if f == "" {
			return fmt.Errorf("%w: empty accepted format", domain.ErrInvalidConfig)
		}
	}
	return nil
}
