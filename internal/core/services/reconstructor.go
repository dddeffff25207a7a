package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
	"github.com/custodia-labs/floorcopy/internal/logger"
)

// Modification scope names.
const (
	scopeCopyFloor       = "Copy floor"
	scopeCreateOpenings  = "Create floor openings"
	scopeTemporaryFloors = "Create temporary floors"
	scopeSubtract        = "Subtract openings"
	scopeOffset          = "Offset floor"
)

// ReconstructorOptions configures both reconstruction strategies.
type ReconstructorOptions struct {
	// InheritStyle creates the new floor with the source's floor type
	// and level instead of the document defaults.
	InheritStyle bool

	// Structural is passed to the floor constructors.
	Structural bool
}

// NewReconstructor returns the reconstructor implementing strategy.
func NewReconstructor(strategy domain.Strategy, opts ReconstructorOptions) (driving.FloorReconstructor, error) {
	switch strategy {
	case domain.StrategyDirect:
		return NewDirectReconstructor(opts), nil
	case domain.StrategyBoolean:
		return NewBooleanReconstructor(opts), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, strategy)
	}
}

// sourceFloor is everything read from a source floor before any mutation.
type sourceFloor struct {
	floor    *domain.Floor
	outer    domain.CurveLoop
	openings []domain.CurveLoop
}

// readSource loads a floor, takes the first solid of its geometry, locates
// the top face and extracts its loops.
func readSource(ctx context.Context, doc driven.Document, id domain.ElementID) (*sourceFloor, error) {
	floor, err := doc.Floor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get floor %s: %w", id, err)
	}

	solid, err := firstSolid(ctx, doc, id)
	if err != nil {
		return nil, err
	}

	top, err := LocateTopFace(solid)
	if err != nil {
		return nil, fmt.Errorf("floor %s: %w", id, err)
	}

	outer, openings, err := ExtractLoops(top)
	if err != nil {
		return nil, fmt.Errorf("floor %s: %w", id, err)
	}

	logger.Debug("floor %s: top face at z=%g, %d curves, %d openings",
		id, top.Origin.Z, len(outer), len(openings))

	return &sourceFloor{floor: floor, outer: outer, openings: openings}, nil
}

// firstSolid returns the first solid in an element's geometry enumeration.
func firstSolid(ctx context.Context, doc driven.GeometrySource, id domain.ElementID) (*domain.Solid, error) {
	objects, err := doc.Geometry(ctx, id, domain.GeometryOptions{IncludeNonSolid: true})
	if err != nil {
		return nil, fmt.Errorf("get geometry of %s: %w", id, err)
	}

	for _, obj := range objects {
		switch obj.Kind {
		case domain.GeometrySolid:
			if s, ok := obj.AsSolid(); ok {
				return s, nil
			}
		case domain.GeometryMesh, domain.GeometryOther:
			continue
		}
	}
	return nil, fmt.Errorf("element %s: %w", id, domain.ErrNoSolidGeometry)
}

// withScope runs fn inside a named modification scope. The scope is rolled
// back when fn fails and committed otherwise.
func withScope(ctx context.Context, doc driven.Transactions, name string, fn func() error) error {
	logger.Phase(name)

	if err := doc.BeginScope(ctx, name); err != nil {
		return fmt.Errorf("begin scope %q: %w", name, err)
	}

	if err := fn(); err != nil {
		if rbErr := doc.RollbackScope(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback scope %q: %w", name, rbErr))
		}
		logger.Warn("scope %q rolled back: %v", name, err)
		return err
	}

	status, err := doc.CommitScope(ctx)
	if err != nil {
		return fmt.Errorf("commit scope %q: %w", name, err)
	}
	if status != domain.CommitCommitted {
		return fmt.Errorf("scope %q %s: %w", name, status, domain.ErrCommitFailed)
	}

	logger.Debug("scope %q committed", name)
	return nil
}

// createFloor creates the duplicate from the outer boundary, either with the
// source's style or with the document defaults.
func createFloor(
	ctx context.Context,
	doc driven.FloorFactory,
	src *sourceFloor,
	opts ReconstructorOptions,
) (*domain.Floor, error) {
	var (
		floor *domain.Floor
		err   error
	)
	if opts.InheritStyle {
		floor, err = doc.CreateTypedFloor(ctx, src.outer, src.floor.TypeID, src.floor.LevelID, opts.Structural)
	} else {
		floor, err = doc.CreateFloor(ctx, src.outer, opts.Structural)
	}
	if err != nil {
		return nil, fmt.Errorf("create floor: %w", err)
	}
	logger.Debug("created floor %s (type %s, level %s)", floor.ID, floor.TypeID, floor.LevelID)
	return floor, nil
}
