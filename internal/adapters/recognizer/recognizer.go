// Package recognizer turns submitted files into documents.
//
// A document file is a small envelope with three keys: format, created and
// content. TOML (.toml) and JSON (.json) envelopes are supported; any other
// key makes the file unrecognizable in either encoding:
//
//	format  = "4.0"
//	created = 2026-10-01T09:30:00Z
//	content = """
//	...
//	"""
package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/docship/internal/domain"
)

// envelope mirrors the on-disk document layout.
type envelope struct {
	Format  string    `toml:"format" json:"format"`
	Created time.Time `toml:"created" json:"created"`
	Content string    `toml:"content" json:"content"`
}

// Recognizer implements ports.Recognizer for TOML and JSON envelopes.
type Recognizer struct{}

// New creates a new Recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// Recognize decodes the file according to its extension.
func (r *Recognizer) Recognize(ctx context.Context, file domain.File) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, domain.Wrap(domain.ErrRecognition, err)
	}

	var env envelope
	switch ext := strings.ToLower(filepath.Ext(file.Name)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(file.Content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&env); err != nil {
			return domain.Document{}, fmt.Errorf("%w: decode toml %s: %w", domain.ErrRecognition, file.Name, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(file.Content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&env); err != nil {
			return domain.Document{}, fmt.Errorf("%w: decode json %s: %w", domain.ErrRecognition, file.Name, err)
		}
	default:
		return domain.Document{}, fmt.Errorf("%w: unsupported file type %q", domain.ErrRecognition, ext)
	}

	if env.Format == "" {
		return domain.Document{}, fmt.Errorf("%w: %s has no format", domain.ErrRecognition, file.Name)
	}
	if env.Created.IsZero() {
		return domain.Document{}, fmt.Errorf("%w: %s has no creation time", domain.ErrRecognition, file.Name)
	}

	return domain.Document{
		Name:    file.Name,
		Content: []byte(env.Content),
		Created: env.Created,
		Format:  env.Format,
	}, nil
}
