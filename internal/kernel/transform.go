package kernel

import (
	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Translate moves every face of s by v in place.
func Translate(s *domain.Solid, v domain.XYZ) {
	for i := range s.Faces {
		f := &s.Faces[i]
		f.Origin = f.Origin.Add(v)
		for j := range f.Loops {
			for k := range f.Loops[j] {
				f.Loops[j][k].Curve = f.Loops[j][k].Curve.Translate(v)
			}
		}
	}
}

// Clone returns a deep copy of s.
func Clone(s *domain.Solid) *domain.Solid {
	if s == nil {
		return nil
	}
	out := &domain.Solid{Faces: make([]domain.Face, len(s.Faces))}
	for i, f := range s.Faces {
		out.Faces[i] = cloneFace(f)
	}
	return out
}

func cloneFace(f domain.Face) domain.Face {
	out := f
	out.Loops = make([]domain.EdgeLoop, len(f.Loops))
	for i, loop := range f.Loops {
		edges := make(domain.EdgeLoop, len(loop))
		for j, e := range loop {
			edges[j] = domain.Edge{Curve: e.Curve.Translate(domain.XYZ{})}
		}
		out.Loops[i] = edges
	}
	return out
}
