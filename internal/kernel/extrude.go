package kernel

import (
	"fmt"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Extrude builds a vertical prism between bottom and top from a planar
// profile. loops[0] is the outer boundary and later loops are holes.
// The top face lists its loops in the same order.
func Extrude(loops []domain.CurveLoop, bottom, top float64) (*domain.Solid, error) {
	if len(loops) == 0 {
		return nil, fmt.Errorf("%w: extrude needs a profile", domain.ErrInvalidInput)
	}
	if top <= bottom {
		return nil, fmt.Errorf("%w: extrusion height %g must be positive", domain.ErrInvalidInput, top-bottom)
	}

	for i, loop := range loops {
		if len(loop) == 0 {
			return nil, fmt.Errorf("%w: profile loop %d is empty", domain.ErrInvalidInput, i)
		}
	}

	solid := &domain.Solid{}
	topFace := domain.Face{
		Kind:   domain.FacePlanar,
		Normal: domain.BasisZ,
		Origin: atZ(loops[0][0].Start(), top),
	}
	bottomFace := domain.Face{
		Kind:   domain.FacePlanar,
		Normal: domain.BasisZ.Negate(),
		Origin: atZ(loops[0][0].Start(), bottom),
	}

	var sides []domain.Face
	for i, loop := range loops {
		topFace.Loops = append(topFace.Loops, domain.EdgeLoopFromCurves(loop.AtElevation(top)))
		bottomFace.Loops = append(bottomFace.Loops, domain.EdgeLoopFromCurves(loop.AtElevation(bottom).Reverse()))
		sides = append(sides, sideFaces(loop, bottom, top, i > 0)...)
	}

	solid.Faces = append(solid.Faces, topFace, bottomFace)
	solid.Faces = append(solid.Faces, sides...)
	return solid, nil
}

// sideFaces returns one lateral face per curve of loop. Normals point out
// of the material: away from the region for the outer loop and into the
// region for holes.
func sideFaces(loop domain.CurveLoop, bottom, top float64, hole bool) []domain.Face {
	ccw := loop.SignedArea() >= 0
	outward := ccw != hole

	faces := make([]domain.Face, 0, len(loop))
	for _, c := range loop {
		lower := c.AtElevation(bottom)
		upper := c.AtElevation(top)

		f := domain.Face{
			Origin: lower.Start(),
			Loops: []domain.EdgeLoop{{
				{Curve: lower},
				{Curve: domain.NewLine(lower.End(), upper.End())},
				{Curve: upper.Reverse()},
				{Curve: domain.NewLine(upper.Start(), lower.Start())},
			}},
		}

		switch c.Kind {
		case domain.CurveLine:
			f.Kind = domain.FacePlanar
			d := lower.End().Sub(lower.Start())
			n := domain.XYZ{X: d.Y, Y: -d.X}.Normalize()
			if !outward {
				n = n.Negate()
			}
			f.Normal = n
		case domain.CurveArc:
			f.Kind = domain.FaceCylindrical
		default:
			f.Kind = domain.FaceRuled
		}
		faces = append(faces, f)
	}
	return faces
}

func atZ(p domain.XYZ, z float64) domain.XYZ {
	return domain.XYZ{X: p.X, Y: p.Y, Z: z}
}
