package domain

import "math"

// Edge is a single bounded curve segment of a face loop.
type Edge struct {
	Curve Curve `json:"curve"`
}

// AsCurve returns the underlying curve geometry of the edge.
func (e Edge) AsCurve() Curve {
	return e.Curve
}

// EdgeLoop is an ordered, closed sequence of edges bounding a face region.
// On a face, loop 0 is the outer boundary and later loops are holes.
type EdgeLoop []Edge

// EdgeLoopFromCurves wraps each curve of a loop in an edge, preserving order.
func EdgeLoopFromCurves(loop CurveLoop) EdgeLoop {
	out := make(EdgeLoop, len(loop))
	for i, c := range loop {
		out[i] = Edge{Curve: c}
	}
	return out
}

// FaceKind identifies the surface type of a face.
type FaceKind string

// Surface types produced by the geometry kernel.
const (
	// FacePlanar is a flat face with a well defined normal and origin.
	FacePlanar FaceKind = "planar"

	// FaceCylindrical is a curved face swept by an arc.
	FaceCylindrical FaceKind = "cylindrical"

	// FaceRuled is a curved face swept by a spline.
	FaceRuled FaceKind = "ruled"
)

// Face is a bounded surface of a solid.
type Face struct {
	Kind FaceKind `json:"kind"`

	// Normal is the unit outward normal. Only meaningful for planar faces.
	Normal XYZ `json:"normal"`

	// Origin is a point on the face.
	Origin XYZ `json:"origin"`

	// Loops are the edge loops bounding the face, outer boundary first.
	Loops []EdgeLoop `json:"loops"`
}

// IsPlanar reports whether the face is planar.
func (f *Face) IsPlanar() bool {
	return f.Kind == FacePlanar
}

// IsHorizontal reports whether the face is planar with a normal along ±Z,
// i.e. both X and Y normal components are within eps of zero.
func (f *Face) IsHorizontal(eps float64) bool {
	return f.IsPlanar() && math.Abs(f.Normal.X) < eps && math.Abs(f.Normal.Y) < eps
}

// Solid is a boundary-represented volume.
type Solid struct {
	Faces []Face `json:"faces"`
}

// GeometryKind tags the variant held by a GeometryObject.
type GeometryKind string

// Geometry variants returned by a geometry query.
const (
	// GeometrySolid carries a Solid.
	GeometrySolid GeometryKind = "solid"

	// GeometryMesh is a tessellated representation without a Solid.
	GeometryMesh GeometryKind = "mesh"

	// GeometryOther is any other geometry such as curves or surfaces.
	GeometryOther GeometryKind = "other"
)

// GeometryObject is one item of an element's geometry enumeration.
// Solid is set only when Kind is GeometrySolid.
type GeometryObject struct {
	Kind  GeometryKind
	Solid *Solid
}

// SolidObject wraps a solid as a geometry object.
func SolidObject(s *Solid) GeometryObject {
	return GeometryObject{Kind: GeometrySolid, Solid: s}
}

// AsSolid returns the solid payload if this object is a solid.
func (g GeometryObject) AsSolid() (*Solid, bool) {
	switch g.Kind {
	case GeometrySolid:
		return g.Solid, g.Solid != nil
	case GeometryMesh, GeometryOther:
		return nil, false
	default:
		return nil, false
	}
}

// GeometryOptions controls a geometry query.
type GeometryOptions struct {
	// IncludeNonSolid asks the host to also return mesh and other objects.
	// Without it hosts may drop everything that is not a solid.
	IncludeNonSolid bool
}
