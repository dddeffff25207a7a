package driven

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// GeometrySource enumerates the geometry of model elements.
type GeometrySource interface {
	// Geometry returns the geometry objects of an element. Solids of
	// elements created in a scope that has not committed yet are not
	// returned: the sequence is empty until the commit.
	Geometry(ctx context.Context, id domain.ElementID, opts domain.GeometryOptions) ([]domain.GeometryObject, error)
}

// FloorFactory creates floors and openings.
// All methods require an open modification scope.
type FloorFactory interface {
	// CreateFloor creates a floor from an outer boundary with the document's
	// default floor type and level.
	CreateFloor(ctx context.Context, boundary domain.CurveLoop, structural bool) (*domain.Floor, error)

	// CreateTypedFloor creates a floor with an explicit floor type and level.
	CreateTypedFloor(
		ctx context.Context,
		boundary domain.CurveLoop,
		typeID, levelID domain.ElementID,
		structural bool,
	) (*domain.Floor, error)

	// CreateTemporaryFloor creates a typed floor flagged as scaffolding.
	CreateTemporaryFloor(
		ctx context.Context,
		boundary domain.CurveLoop,
		typeID, levelID domain.ElementID,
	) (*domain.Floor, error)

	// CreateOpening cuts an opening bounded by loop into a floor.
	CreateOpening(ctx context.Context, floorID domain.ElementID, loop domain.CurveLoop, cut bool) (*domain.Opening, error)
}

// SolidOperations performs boolean operations on solids.
type SolidOperations interface {
	// BooleanDifference subtracts b from a, modifying a in place.
	BooleanDifference(ctx context.Context, a, b *domain.Solid) error
}

// Transactions brackets document modifications in named scopes.
// Only one scope may be open at a time.
type Transactions interface {
	// BeginScope opens a named modification scope.
	BeginScope(ctx context.Context, name string) error

	// CommitScope finalises the open scope and materialises geometry of
	// elements created or changed in it.
	CommitScope(ctx context.Context) (domain.CommitStatus, error)

	// RollbackScope discards every change made in the open scope.
	RollbackScope(ctx context.Context) error
}

// ElementQuery reads elements of the document.
type ElementQuery interface {
	// Element returns the category-level view of an element.
	Element(ctx context.Context, id domain.ElementID) (*domain.Element, error)

	// Floor returns a floor by ID.
	Floor(ctx context.Context, id domain.ElementID) (*domain.Floor, error)

	// ListFloors returns all floors.
	ListFloors(ctx context.Context) ([]domain.Floor, error)

	// Openings returns the openings hosted by a floor.
	Openings(ctx context.Context, floorID domain.ElementID) ([]domain.Opening, error)
}

// ElementEditor modifies existing elements.
// All methods require an open modification scope.
type ElementEditor interface {
	// Move translates an element, its geometry and hosted openings.
	Move(ctx context.Context, id domain.ElementID, offset domain.XYZ) error

	// Delete removes an element and anything it hosts.
	Delete(ctx context.Context, id domain.ElementID) error
}

// Document is one open building model, the single-writer host
// environment every core operation runs against.
type Document interface {
	GeometrySource
	FloorFactory
	SolidOperations
	Transactions
	ElementQuery
	ElementEditor
}
