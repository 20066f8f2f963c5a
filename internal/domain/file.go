package domain

import (
	"crypto/ed25519"
	"time"
)

// File is a submitted file as received from the inbox.
type File struct {
	// Name identifies the file within its batch (e.g., "invoice-0001.toml")
	Name string

	// Content is the raw file content
	Content []byte
}

// Document is the structured form of a File produced by a recognizer.
type Document struct {
	// Name is the name of the file the document was recognized from
	Name string

	// Content is the document body that gets signed and delivered
	Content []byte

	// Created is the document creation time
	Created time.Time

	// Format is the document format version (e.g., "3.1", "4.0")
	Format string
}

// Certificate is the credential used to sign every document of a batch.
// The orchestrator passes it through without inspecting it.
type Certificate struct {
	// ID identifies the certificate to the receiving side
	ID string

	// PrivateKey is the ed25519 signing key
	PrivateKey ed25519.PrivateKey
}

// SignedContent is the signed payload handed to a sender.
type SignedContent []byte
