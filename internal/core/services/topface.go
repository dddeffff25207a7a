package services

import (
	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// LocateTopFace returns the horizontal planar face of a solid with the
// greatest origin elevation. A later face only replaces the current one
// when strictly higher, so the first face at the top elevation wins.
// Returns domain.ErrNoTopFace when the solid has no horizontal planar face.
func LocateTopFace(solid *domain.Solid) (*domain.Face, error) {
	if solid == nil {
		return nil, domain.ErrNoTopFace
	}

	var top *domain.Face
	for i := range solid.Faces {
		f := &solid.Faces[i]
		if !f.IsHorizontal(domain.HorizontalTolerance) {
			continue
		}
		if top == nil || top.Origin.Z < f.Origin.Z {
			top = f
		}
	}

	if top == nil {
		return nil, domain.ErrNoTopFace
	}
	return top, nil
}
