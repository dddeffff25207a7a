package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
)

// OpeningCompositor applies inner boundaries to a new floor, either as
// explicit openings or as boolean differences of solids.
//
// Neither mode validates its input: loops are not checked for containment
// in the outer boundary, duplicates are not removed and overlapping
// subtrahends are passed to the kernel unchanged.
type OpeningCompositor struct{}

// AddOpening cuts one opening bounded by loop into floor.
func (OpeningCompositor) AddOpening(
	ctx context.Context,
	doc driven.FloorFactory,
	floorID domain.ElementID,
	loop domain.CurveLoop,
) (domain.ElementID, error) {
	opening, err := doc.CreateOpening(ctx, floorID, loop, true)
	if err != nil {
		return "", fmt.Errorf("create opening on %s: %w", floorID, err)
	}
	return opening.ID, nil
}

// Subtract removes hole from floorSolid in place. Repeated calls accumulate.
func (OpeningCompositor) Subtract(
	ctx context.Context,
	doc driven.SolidOperations,
	floorSolid, hole *domain.Solid,
) error {
	if err := doc.BooleanDifference(ctx, floorSolid, hole); err != nil {
		return fmt.Errorf("boolean difference: %w", err)
	}
	return nil
}
