package cliconfig

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bft-labs/docship/internal/domain"
)

// certFile is the on-disk certificate layout:
//
//	{"id": "...", "priv_key": {"type": "ed25519", "value": "<base64>"}}
type certFile struct {
	ID      string `json:"id"`
	PrivKey struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"priv_key"`
}

// LoadCertificate reads an ed25519 certificate from a JSON key file.
// When the file has no id, the id is derived from the public key.
func LoadCertificate(path string) (domain.Certificate, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("read certificate: %w", err)
	}
	var cf certFile
	if err := json.Unmarshal(b, &cf); err != nil {
		return domain.Certificate{}, fmt.Errorf("decode certificate: %w", err)
	}

	privKeyBytes, err := base64.StdEncoding.DecodeString(cf.PrivKey.Value)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("decode priv key: %w", err)
	}

	// Accept either the 32-byte seed or the full 64-byte key.
	var privKey ed25519.PrivateKey
	switch len(privKeyBytes) {
	case ed25519.SeedSize:
		privKey = ed25519.NewKeyFromSeed(privKeyBytes)
	case ed25519.PrivateKeySize:
		privKey = ed25519.PrivateKey(privKeyBytes)
	default:
		return domain.Certificate{}, fmt.Errorf("invalid priv key length: %d", len(privKeyBytes))
	}

	id := cf.ID
	if id == "" {
		id = CertificateID(privKey.Public().(ed25519.PublicKey))
	}

	return domain.Certificate{ID: id, PrivateKey: privKey}, nil
}

// CertificateID is the hex encoding of the first 20 bytes of SHA256(pub).
func CertificateID(pub ed25519.PublicKey) string {
	sha := sha256.Sum256(pub)
	return hex.EncodeToString(sha[:20])
}
