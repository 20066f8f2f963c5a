// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [Recognizer]: Turns a raw file into a structured document
//   - [Signer]: Signs document content with a certificate
//   - [Sender]: Delivers a signed payload
//   - [Clock]: Supplies the current time
//   - [FileSource]: Lists the files of a batch
//   - [ReportRepository]: Persists batch reports
//   - [Archive]: Moves delivered files out of the inbox
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement these interfaces
// with concrete implementations (file system, HTTP, ed25519, etc.).
package ports
