// Package domain contains the core domain entities and value objects for docship.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [File]: A submitted file (name and raw content)
//   - [Document]: A recognized file with format and creation time
//   - [Certificate]: The credential every document of a batch is signed with
//   - [BatchResult]: The files of a batch that were skipped, in input order
//   - [Report]: The persisted summary of one batch run
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
