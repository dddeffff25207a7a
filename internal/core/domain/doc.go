// Package domain defines the core entities for floorcopy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - XYZ, Curve, CurveLoop: plan and model space geometry primitives
//   - Edge, EdgeLoop, Face, Solid: the boundary representation read from a host
//   - GeometryObject: tagged variant returned by geometry queries
//   - Floor, Opening, Level, FloorType: persisted model elements
//   - CopySettings, CopyResult: configuration and outcome of a floor copy
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
