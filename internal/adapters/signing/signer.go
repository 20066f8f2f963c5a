// Package signing signs document content with ed25519 certificates.
package signing

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bft-labs/docship/internal/domain"
)

// Envelope is the signed payload produced by Signer.
// []byte fields are base64 encoded by encoding/json.
type Envelope struct {
	CertID    string `json:"cert_id"`
	Content   []byte `json:"content"`
	Signature []byte `json:"signature"`
	SHA256    string `json:"sha256"`
}

// ErrBadSignature is returned by Verify when the signature does not match.
var ErrBadSignature = errors.New("signature mismatch")

// Signer implements ports.Signer with ed25519.
type Signer struct{}

// NewSigner creates a new Signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Sign signs content with the certificate's private key and returns a JSON envelope.
func (s *Signer) Sign(ctx context.Context, content []byte, cert domain.Certificate) (domain.SignedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Wrap(domain.ErrSigning, err)
	}
	if len(cert.PrivateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: invalid private key length: %d", domain.ErrSigning, len(cert.PrivateKey))
	}

	sum := sha256.Sum256(content)
	env := Envelope{
		CertID:    cert.ID,
		Content:   content,
		Signature: ed25519.Sign(cert.PrivateKey, content),
		SHA256:    hex.EncodeToString(sum[:]),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal envelope: %w", domain.ErrSigning, err)
	}
	return domain.SignedContent(data), nil
}

// Verify decodes a signed payload and checks its signature against pub.
func Verify(signed domain.SignedContent, pub ed25519.PublicKey) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(signed, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize || !ed25519.Verify(pub, env.Content, env.Signature) {
		return Envelope{}, ErrBadSignature
	}
	return env, nil
}
