// Package resource implements the resource-collection pipeline shared by
// every kind the monitoring service exposes.
//
// A Pipeline owns one Collection and runs it through:
//
//	fetch (once) -> Criteria -> SortSpec -> limit -> Renderer
//
// Kinds differ only by their Schema (path, response key, fields, unique
// key), so servers, sites and tokens reuse the same code. Mutations go
// through a Mutator which enforces read-only mode before any request is
// issued.
//
// The package has no dependency on the CLI layer. It talks to the
// service through the Transport interface.
package resource
