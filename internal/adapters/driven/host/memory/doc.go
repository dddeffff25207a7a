// Package memory provides an in-memory building model host.
//
// Document implements driven.Document over the prismatic kernel in
// internal/kernel. It reproduces the behaviour of a real modelling host
// that matters to the copy algorithms:
//
//   - modifications only inside a named scope, one scope at a time
//   - floors created in a scope expose no geometry until it commits
//   - rollback restores the state from before BeginScope
//
// Attach a driven.ModelStore with Open to persist every commit.
package memory
