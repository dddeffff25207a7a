package services

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
)

// Ensure DirectReconstructor implements the interface.
var _ driving.FloorReconstructor = (*DirectReconstructor)(nil)

// DirectReconstructor duplicates a floor from its outer boundary and then
// cuts one explicit opening per inner boundary. The result keeps host-native
// openings that stay editable as such.
type DirectReconstructor struct {
	opts       ReconstructorOptions
	compositor OpeningCompositor
}

// NewDirectReconstructor creates a direct opening reconstructor.
func NewDirectReconstructor(opts ReconstructorOptions) *DirectReconstructor {
	return &DirectReconstructor{opts: opts}
}

// Strategy returns domain.StrategyDirect.
func (r *DirectReconstructor) Strategy() domain.Strategy {
	return domain.StrategyDirect
}

// Build creates the new floor in one scope and its openings in a second
// one. Openings need the floor committed first: the host only materialises
// a floor's geometry when its scope commits.
func (r *DirectReconstructor) Build(
	ctx context.Context,
	doc driven.Document,
	sourceID domain.ElementID,
) (*domain.Reconstruction, error) {
	src, err := readSource(ctx, doc, sourceID)
	if err != nil {
		return nil, err
	}

	result := &domain.Reconstruction{}

	err = withScope(ctx, doc, scopeCopyFloor, func() error {
		floor, err := createFloor(ctx, doc, src, r.opts)
		if err != nil {
			return err
		}
		result.Floor = floor.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(src.openings) == 0 {
		return result, nil
	}

	openings := make([]domain.ElementID, 0, len(src.openings))
	err = withScope(ctx, doc, scopeCreateOpenings, func() error {
		for _, loop := range src.openings {
			id, err := r.compositor.AddOpening(ctx, doc, result.Floor, loop)
			if err != nil {
				return err
			}
			openings = append(openings, id)
		}
		return nil
	})
	if err != nil {
		// The floor is committed; report it so the caller can clean up.
		return result, err
	}

	result.Openings = openings
	return result, nil
}
