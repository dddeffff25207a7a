package driven

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Model is a snapshot of everything persisted for one building model.
type Model struct {
	Levels     []domain.Level
	FloorTypes []domain.FloorType
	Floors     []domain.Floor
	Openings   []domain.Opening

	// Solids holds the materialised geometry of floors, keyed by floor ID.
	// Floors without an entry have their geometry regenerated on load.
	Solids map[domain.ElementID]*domain.Solid
}

// ModelStore persists model elements between runs.
// Backed by SQLite for the CLI and by memory in tests.
type ModelStore interface {
	// Load returns every persisted element.
	Load(ctx context.Context) (*Model, error)

	// SaveLevel stores or updates a level.
	SaveLevel(ctx context.Context, level domain.Level) error

	// SaveFloorType stores or updates a floor type.
	SaveFloorType(ctx context.Context, floorType domain.FloorType) error

	// SaveFloor stores or updates a floor.
	SaveFloor(ctx context.Context, floor domain.Floor) error

	// SaveOpening stores or updates an opening.
	SaveOpening(ctx context.Context, opening domain.Opening) error

	// SaveSolid stores the materialised solid of a floor. Boolean results
	// cannot be regenerated from the floor's boundary, so they are kept.
	SaveSolid(ctx context.Context, floorID domain.ElementID, solid *domain.Solid) error

	// DeleteFloor removes a floor, its openings and its solid.
	DeleteFloor(ctx context.Context, id domain.ElementID) error

	// DeleteOpening removes an opening.
	DeleteOpening(ctx context.Context, id domain.ElementID) error
}
