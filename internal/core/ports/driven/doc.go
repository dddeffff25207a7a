// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Document: the host building model (geometry queries, floor and
//     opening creation, boolean operations, modification scopes)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - Selection: interactive element picking. Without it only copies by
//     explicit element ID are possible.
//   - ModelStore: persistence used by host adapters to load and save models.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
