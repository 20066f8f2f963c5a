package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"runtime"

	"github.com/bft-labs/docship/internal/domain"
	"github.com/bft-labs/docship/internal/ports"
	"github.com/bft-labs/docship/pkg/log"
)

const documentsEndpoint = "/v1/ingest/documents"

// SendMetadata provides context for the send operation.
// This information is included in HTTP headers for server-side tracking.
type SendMetadata struct {
	// Hostname is the agent's hostname
	Hostname string

	// AuthKey is the API authentication key
	AuthKey string

	// ServiceURL is the base URL of the ingestion service
	ServiceURL string
}

// Sender implements ports.Sender using HTTP multipart upload.
type Sender struct {
	client   ports.HTTPClient
	metadata SendMetadata
	logger   log.Logger
}

// NewSender creates a new HTTP document sender.
func NewSender(client ports.HTTPClient, metadata SendMetadata, logger log.Logger) *Sender {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Sender{
		client:   client,
		metadata: metadata,
		logger:   logger,
	}
}

// Send uploads one signed payload. It makes a single attempt.
func (s *Sender) Send(ctx context.Context, signed domain.SignedContent) error {
	if len(signed) == 0 {
		return fmt.Errorf("%w: empty payload", domain.ErrDelivery)
	}

	sum := sha256.Sum256(signed)
	digest := hex.EncodeToString(sum[:])

	// Build multipart request body
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("signed", digest[:16]+".json")
	if err != nil {
		return fmt.Errorf("create signed field: %w", err)
	}
	if _, err := part.Write(signed); err != nil {
		return fmt.Errorf("write signed payload: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart: %w", err)
	}

	url := s.metadata.ServiceURL + documentsEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Agent-Hostname", s.metadata.Hostname)
	req.Header.Set("X-Agent-OSArch", runtime.GOOS+"/"+runtime.GOARCH)
	req.Header.Set("X-Content-SHA256", digest)
	if s.metadata.AuthKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.metadata.AuthKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send request: %w", domain.ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: server returned %d: %s", domain.ErrDelivery, resp.StatusCode, string(respBody))
	}

	s.logger.Debug("document delivered", log.String("sha256", digest), log.Int("status", resp.StatusCode))
	return nil
}
