package services

import (
	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// ExtractLoops splits a face's edge loops into the outer boundary (loop 0)
// and the openings (every later loop, in face order). Each loop is mapped
// edge by edge into a curve loop.
// Returns domain.ErrNoEdgeLoops when the face has no loops.
func ExtractLoops(face *domain.Face) (domain.CurveLoop, []domain.CurveLoop, error) {
	if face == nil || len(face.Loops) == 0 {
		return nil, nil, domain.ErrNoEdgeLoops
	}

	outer := curveLoopFromEdges(face.Loops[0])

	openings := make([]domain.CurveLoop, 0, len(face.Loops)-1)
	for _, loop := range face.Loops[1:] {
		openings = append(openings, curveLoopFromEdges(loop))
	}

	return outer, openings, nil
}

// curveLoopFromEdges maps each edge to its curve, preserving order.
func curveLoopFromEdges(edges domain.EdgeLoop) domain.CurveLoop {
	loop := make(domain.CurveLoop, 0, len(edges))
	for _, e := range edges {
		loop = append(loop, e.AsCurve())
	}
	return loop
}
