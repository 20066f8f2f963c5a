package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/docship/internal/domain"
)

// DefaultServiceURL is the default endpoint for delivering documents.
const DefaultServiceURL = "https://api.docship.io"

// Config holds CLI configuration for docship.
type Config struct {
	InboxDir  string
	ReportDir string
	CertPath  string

	ServiceURL string
	AuthKey    string

	AcceptedFormats []string
	Workers         int
	HTTPTimeout     time.Duration

	Watch    bool
	Debounce time.Duration
	MoveSent bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceURL:      DefaultServiceURL,
		AcceptedFormats: []string{"4.0", "3.1"},
		Workers:         4,
		HTTPTimeout:     15 * time.Second,
		Debounce:        500 * time.Millisecond,
		ReportDir:       "", // Derived from InboxDir during Validate
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InboxDir == "" {
		return fmt.Errorf("%w: inbox-dir is required", domain.ErrInvalidConfig)
	}
	if c.CertPath == "" {
		return fmt.Errorf("%w: cert is required", domain.ErrInvalidConfig)
	}

	if c.ReportDir == "" {
		// hidden, so the inbox never lists its own reports
		c.ReportDir = filepath.Join(c.InboxDir, ".reports")
	}
	if filepath.Clean(c.ReportDir) == filepath.Clean(c.InboxDir) {
		// reports would be listed as documents, and in watch mode each one triggers a new batch
		return fmt.Errorf("%w: report-dir must differ from inbox-dir", domain.ErrInvalidConfig)
	}

	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")

	if len(c.AcceptedFormats) == 0 {
		return fmt.Errorf("%w: at least one accepted format is required", domain.ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", domain.ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}
	if c.Watch {
		if c.Debounce <= 0 {
			return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
		}
		// delivered files must leave the inbox or every trigger resends them
		c.MoveSent = true
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list value if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setStringsFromString splits a comma-separated list, dropping empty items.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
