package kernel

import (
	"fmt"
	"math"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Subtract removes b from a, modifying a in place.
//
// Both operands must be vertical prisms spanning the same heights and b must
// have no holes of its own. b's outer boundary becomes a new hole loop on
// a's caps and b's lateral faces are added to a facing into the hole.
// Overlapping subtrahends are not detected.
func Subtract(a, b *domain.Solid) error {
	pa, err := findPrism(a)
	if err != nil {
		return fmt.Errorf("minuend: %w", err)
	}
	pb, err := findPrism(b)
	if err != nil {
		return fmt.Errorf("subtrahend: %w", err)
	}

	topA, bottomA := a.Faces[pa.top].Origin.Z, a.Faces[pa.bottom].Origin.Z
	topB, bottomB := b.Faces[pb.top].Origin.Z, b.Faces[pb.bottom].Origin.Z
	if math.Abs(topA-topB) > heightTolerance || math.Abs(bottomA-bottomB) > heightTolerance {
		return fmt.Errorf("%w: subtrahend spans [%g, %g], minuend spans [%g, %g]",
			domain.ErrUnsupportedBoolean, bottomB, topB, bottomA, topA)
	}
	if len(b.Faces[pb.top].Loops) != 1 {
		return fmt.Errorf("%w: subtrahend has holes", domain.ErrUnsupportedBoolean)
	}

	hole := curveLoop(b.Faces[pb.top].Loops[0])
	if hole.Area() == 0 {
		return fmt.Errorf("%w: subtrahend has no area", domain.ErrUnsupportedBoolean)
	}

	a.Faces[pa.top].Loops = append(a.Faces[pa.top].Loops,
		domain.EdgeLoopFromCurves(hole.AtElevation(topA)))
	a.Faces[pa.bottom].Loops = append(a.Faces[pa.bottom].Loops,
		domain.EdgeLoopFromCurves(hole.AtElevation(bottomA).Reverse()))

	for i := range b.Faces {
		if i == pb.top || i == pb.bottom {
			continue
		}
		f := cloneFace(b.Faces[i])
		if f.IsPlanar() {
			f.Normal = f.Normal.Negate()
		}
		a.Faces = append(a.Faces, f)
	}
	return nil
}
