// Package services implements the driving port interfaces.
// Services contain the core floor copy logic and orchestrate
// calls to driven ports (adapters).
//
// The geometric core lives here as plain functions and small types:
//
//   - LocateTopFace: the highest horizontal planar face of a solid
//   - ExtractLoops: outer boundary and opening loops of a face
//   - DirectReconstructor, BooleanReconstructor: the two copy strategies
//   - OpeningCompositor: explicit openings or boolean subtraction
//
// Services are pure Go with no CGO or external dependencies.
package services
