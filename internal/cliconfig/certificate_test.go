package cliconfig

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeCert(t *testing.T, id string, key []byte) string {
	t.Helper()
	var cf certFile
	cf.ID = id
	cf.PrivKey.Type = "ed25519"
	cf.PrivKey.Value = base64.StdEncoding.EncodeToString(key)
	b, err := json.Marshal(cf)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "cert.json")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCertificate(t *testing.T) {
	pubKey, privKey, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	sha := sha256.Sum256(pubKey)
	derivedID := hex.EncodeToString(sha[:20])

	tests := []struct {
		name   string
		id     string
		key    []byte
		wantID string
	}{
		{"full key with id", "issuer-1", privKey, "issuer-1"},
		{"full key derives id", "", privKey, derivedID},
		{"seed derives id", "", privKey.Seed(), derivedID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := LoadCertificate(writeCert(t, tt.id, tt.key))
			if err != nil {
				t.Fatalf("LoadCertificate() unexpected error: %v", err)
			}
			if cert.ID != tt.wantID {
				t.Errorf("ID = %v, want %v", cert.ID, tt.wantID)
			}
			if !cert.PrivateKey.Equal(privKey) {
				t.Error("PrivateKey does not match the written key")
			}
		})
	}
}

func TestLoadCertificate_Errors(t *testing.T) {
	badJSON := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(badJSON, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	badBase64 := filepath.Join(t.TempDir(), "b64.json")
	if err := os.WriteFile(badBase64, []byte(`{"priv_key":{"value":"***"}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.json")},
		{"invalid json", badJSON},
		{"invalid base64", badBase64},
		{"wrong key length", writeCert(t, "x", make([]byte, 10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCertificate(tt.path); err == nil {
				t.Error("LoadCertificate() expected error")
			}
		})
	}
}
