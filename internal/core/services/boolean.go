package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
	"github.com/custodia-labs/floorcopy/internal/logger"
)

// Ensure BooleanReconstructor implements the interface.
var _ driving.FloorReconstructor = (*BooleanReconstructor)(nil)

// BooleanReconstructor duplicates a floor from its outer boundary and
// carves the openings out of its solid with temporary floors built from
// the inner boundaries. The shape is right but the holes are not host
// openings.
//
// The temporary floors are returned as scaffolding; deleting them is the
// caller's job.
type BooleanReconstructor struct {
	opts       ReconstructorOptions
	compositor OpeningCompositor
}

// NewBooleanReconstructor creates a boolean subtraction reconstructor.
func NewBooleanReconstructor(opts ReconstructorOptions) *BooleanReconstructor {
	return &BooleanReconstructor{opts: opts}
}

// Strategy returns domain.StrategyBoolean.
func (r *BooleanReconstructor) Strategy() domain.Strategy {
	return domain.StrategyBoolean
}

// Build runs three scopes: the new floor, the temporary floors, and the
// subtractions. Each solid is read only after the scope creating its
// floor has committed.
func (r *BooleanReconstructor) Build(
	ctx context.Context,
	doc driven.Document,
	sourceID domain.ElementID,
) (*domain.Reconstruction, error) {
	src, err := readSource(ctx, doc, sourceID)
	if err != nil {
		return nil, err
	}

	result := &domain.Reconstruction{}
	var newFloor *domain.Floor

	err = withScope(ctx, doc, scopeCopyFloor, func() error {
		newFloor, err = createFloor(ctx, doc, src, r.opts)
		if err != nil {
			return err
		}
		result.Floor = newFloor.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(src.openings) == 0 {
		return result, nil
	}

	// Temporary floors share the new floor's type and level so their
	// solids span the same height.
	temps := make([]domain.ElementID, 0, len(src.openings))
	err = withScope(ctx, doc, scopeTemporaryFloors, func() error {
		for i, loop := range src.openings {
			temp, err := doc.CreateTemporaryFloor(ctx, loop, newFloor.TypeID, newFloor.LevelID)
			if err != nil {
				return fmt.Errorf("create temporary floor %d: %w", i, err)
			}
			logger.Debug("created temporary floor %s for opening %d", temp.ID, i)
			temps = append(temps, temp.ID)
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.Scaffolding = temps

	subtractions := 0
	err = withScope(ctx, doc, scopeSubtract, func() error {
		floorSolid, err := firstSolid(ctx, doc, result.Floor)
		if err != nil {
			return err
		}
		for _, id := range temps {
			hole, err := firstSolid(ctx, doc, id)
			if err != nil {
				return err
			}
			if err := r.compositor.Subtract(ctx, doc, floorSolid, hole); err != nil {
				return fmt.Errorf("subtract %s from %s: %w", id, result.Floor, err)
			}
			subtractions++
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Subtractions = subtractions
	return result, nil
}
