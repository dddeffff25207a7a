package kernel

import (
	"fmt"
	"math"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// heightTolerance is used when comparing cap elevations of two prisms.
const heightTolerance = 1.0e-6

// prism locates the caps of a vertical prism: exactly one planar face
// facing +Z, one facing -Z, and lateral faces only otherwise.
type prism struct {
	top    int
	bottom int
}

func findPrism(s *domain.Solid) (prism, error) {
	p := prism{top: -1, bottom: -1}
	if s == nil {
		return p, fmt.Errorf("%w: nil solid", domain.ErrUnsupportedBoolean)
	}

	for i := range s.Faces {
		f := &s.Faces[i]
		if !f.IsHorizontal(domain.HorizontalTolerance) {
			if f.IsPlanar() && math.Abs(f.Normal.Z) > domain.HorizontalTolerance {
				return p, fmt.Errorf("%w: face %d is neither horizontal nor vertical", domain.ErrUnsupportedBoolean, i)
			}
			continue
		}
		switch {
		case f.Normal.Z > 0 && p.top < 0:
			p.top = i
		case f.Normal.Z < 0 && p.bottom < 0:
			p.bottom = i
		default:
			return p, fmt.Errorf("%w: more than two horizontal faces", domain.ErrUnsupportedBoolean)
		}
	}

	if p.top < 0 || p.bottom < 0 {
		return p, fmt.Errorf("%w: solid is not a vertical prism", domain.ErrUnsupportedBoolean)
	}
	if len(s.Faces[p.top].Loops) == 0 {
		return p, fmt.Errorf("%w: top face has no loops", domain.ErrUnsupportedBoolean)
	}
	return p, nil
}

func (p prism) height(s *domain.Solid) float64 {
	return s.Faces[p.top].Origin.Z - s.Faces[p.bottom].Origin.Z
}

// capArea is the outer loop area of the top face minus its holes.
func (p prism) capArea(s *domain.Solid) float64 {
	loops := s.Faces[p.top].Loops
	area := curveLoop(loops[0]).Area()
	for _, hole := range loops[1:] {
		area -= curveLoop(hole).Area()
	}
	return area
}

func curveLoop(edges domain.EdgeLoop) domain.CurveLoop {
	loop := make(domain.CurveLoop, len(edges))
	for i, e := range edges {
		loop[i] = e.AsCurve()
	}
	return loop
}

// Volume returns the volume of a vertical prism solid.
func Volume(s *domain.Solid) (float64, error) {
	p, err := findPrism(s)
	if err != nil {
		return 0, err
	}
	return p.capArea(s) * p.height(s), nil
}

// TopArea returns the net area of the top face of a vertical prism solid.
func TopArea(s *domain.Solid) (float64, error) {
	p, err := findPrism(s)
	if err != nil {
		return 0, err
	}
	return p.capArea(s), nil
}
