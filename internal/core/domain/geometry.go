package domain

import (
	"fmt"
	"math"
)

// HorizontalTolerance bounds the X and Y components of a face normal
// for the face to count as horizontal.
const HorizontalTolerance = 1.0e-9

// PointTolerance is used when comparing points for coincidence.
const PointTolerance = 1.0e-6

// arcSegments is the number of chords an arc is split into when tessellated.
const arcSegments = 32

// XYZ is a point or vector in model space.
type XYZ struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
	Z float64 `json:"z" toml:"z" yaml:"z"`
}

// BasisZ is the unit vector along the Z axis.
var BasisZ = XYZ{Z: 1}

// Add returns v + o.
func (v XYZ) Add(o XYZ) XYZ {
	return XYZ{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v XYZ) Sub(o XYZ) XYZ {
	return XYZ{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v XYZ) Scale(s float64) XYZ {
	return XYZ{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Negate returns -v.
func (v XYZ) Negate() XYZ {
	return v.Scale(-1)
}

// Dot returns the dot product.
func (v XYZ) Dot(o XYZ) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v XYZ) Cross(o XYZ) XYZ {
	return XYZ{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length.
func (v XYZ) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v XYZ) Normalize() XYZ {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsAlmostEqualTo reports whether every component differs by less than tol.
func (v XYZ) IsAlmostEqualTo(o XYZ, tol float64) bool {
	return math.Abs(v.X-o.X) < tol && math.Abs(v.Y-o.Y) < tol && math.Abs(v.Z-o.Z) < tol
}

// String returns a compact representation for logs.
func (v XYZ) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// CurveKind identifies the primitive a Curve represents.
type CurveKind string

// Supported curve primitives.
const (
	// CurveLine is a straight segment defined by start and end.
	CurveLine CurveKind = "line"

	// CurveArc is a circular arc through start, mid and end points.
	CurveArc CurveKind = "arc"

	// CurveSpline is an open polyline-like spline through its control points.
	CurveSpline CurveKind = "spline"
)

// IsValid returns true if the curve kind is recognised.
func (k CurveKind) IsValid() bool {
	switch k {
	case CurveLine, CurveArc, CurveSpline:
		return true
	default:
		return false
	}
}

// Curve is a bounded curve primitive usable as floor boundary input.
// Points holds start and end for lines, start, mid and end for arcs,
// and the control points for splines.
type Curve struct {
	Kind   CurveKind `json:"kind"`
	Points []XYZ     `json:"points"`
}

// NewLine creates a line curve.
func NewLine(start, end XYZ) Curve {
	return Curve{Kind: CurveLine, Points: []XYZ{start, end}}
}

// NewArc creates an arc through three points.
func NewArc(start, mid, end XYZ) Curve {
	return Curve{Kind: CurveArc, Points: []XYZ{start, mid, end}}
}

// NewSpline creates a spline through the given control points.
func NewSpline(points ...XYZ) Curve {
	cp := make([]XYZ, len(points))
	copy(cp, points)
	return Curve{Kind: CurveSpline, Points: cp}
}

// Validate checks the point count for the curve kind.
func (c Curve) Validate() error {
	switch c.Kind {
	case CurveLine:
		if len(c.Points) != 2 {
			return fmt.Errorf("%w: line needs 2 points, got %d", ErrInvalidInput, len(c.Points))
		}
		if c.Points[0].IsAlmostEqualTo(c.Points[1], PointTolerance) {
			return fmt.Errorf("%w: zero-length line", ErrInvalidInput)
		}
	case CurveArc:
		if len(c.Points) != 3 {
			return fmt.Errorf("%w: arc needs 3 points, got %d", ErrInvalidInput, len(c.Points))
		}
		if _, _, ok := circleThrough(c.Points[0], c.Points[1], c.Points[2]); !ok {
			return fmt.Errorf("%w: arc points are collinear", ErrInvalidInput)
		}
	case CurveSpline:
		if len(c.Points) < 2 {
			return fmt.Errorf("%w: spline needs at least 2 points", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown curve kind %q", ErrInvalidInput, c.Kind)
	}
	return nil
}

// Start returns the first point of the curve.
func (c Curve) Start() XYZ {
	if len(c.Points) == 0 {
		return XYZ{}
	}
	return c.Points[0]
}

// End returns the last point of the curve.
func (c Curve) End() XYZ {
	if len(c.Points) == 0 {
		return XYZ{}
	}
	return c.Points[len(c.Points)-1]
}

// Translate returns a copy of the curve moved by v.
func (c Curve) Translate(v XYZ) Curve {
	pts := make([]XYZ, len(c.Points))
	for i, p := range c.Points {
		pts[i] = p.Add(v)
	}
	return Curve{Kind: c.Kind, Points: pts}
}

// AtElevation returns a copy of the curve with every point at height z.
func (c Curve) AtElevation(z float64) Curve {
	pts := make([]XYZ, len(c.Points))
	for i, p := range c.Points {
		pts[i] = XYZ{X: p.X, Y: p.Y, Z: z}
	}
	return Curve{Kind: c.Kind, Points: pts}
}

// Reverse returns the curve traversed from end to start.
func (c Curve) Reverse() Curve {
	pts := make([]XYZ, len(c.Points))
	for i, p := range c.Points {
		pts[len(c.Points)-1-i] = p
	}
	return Curve{Kind: c.Kind, Points: pts}
}

// Tessellate returns points along the curve, start and end included.
func (c Curve) Tessellate() []XYZ {
	if c.Kind != CurveArc || len(c.Points) != 3 {
		out := make([]XYZ, len(c.Points))
		copy(out, c.Points)
		return out
	}

	start, mid, end := c.Points[0], c.Points[1], c.Points[2]
	center, radius, ok := circleThrough(start, mid, end)
	if !ok {
		return []XYZ{start, mid, end}
	}

	a0 := math.Atan2(start.Y-center.Y, start.X-center.X)
	am := math.Atan2(mid.Y-center.Y, mid.X-center.X)
	a1 := math.Atan2(end.Y-center.Y, end.X-center.X)

	// Sweep counter-clockwise from a0; flip when mid is not on that side.
	sweep := normalizeAngle(a1 - a0)
	if normalizeAngle(am-a0) > sweep {
		sweep -= 2 * math.Pi
	}

	out := make([]XYZ, 0, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		t := float64(i) / arcSegments
		a := a0 + sweep*t
		z := start.Z + (end.Z-start.Z)*t
		out = append(out, XYZ{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a), Z: z})
	}
	out[0] = start
	out[len(out)-1] = end
	return out
}

// Length returns the length of the tessellated curve.
func (c Curve) Length() float64 {
	pts := c.Tessellate()
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Length()
	}
	return total
}

// normalizeAngle maps a to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// circleThrough returns the XY circle through three points.
func circleThrough(a, b, c XYZ) (XYZ, float64, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < PointTolerance*PointTolerance {
		return XYZ{}, 0, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	center := XYZ{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
		Z: a.Z,
	}
	radius := math.Hypot(a.X-center.X, a.Y-center.Y)
	return center, radius, true
}

// CurveLoop is an ordered sequence of curves, the "curve array" used as
// input for new floors and openings.
type CurveLoop []Curve

// Len returns the number of curves in the loop.
func (l CurveLoop) Len() int {
	return len(l)
}

// Validate checks every curve and the chaining of consecutive curves.
func (l CurveLoop) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: empty curve loop", ErrInvalidInput)
	}
	for i, c := range l {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		next := l[(i+1)%len(l)]
		if !c.End().IsAlmostEqualTo(next.Start(), PointTolerance) {
			return fmt.Errorf("%w: curve %d does not connect to curve %d", ErrInvalidInput, i, (i+1)%len(l))
		}
	}
	return nil
}

// Translate returns a copy of the loop moved by v.
func (l CurveLoop) Translate(v XYZ) CurveLoop {
	out := make(CurveLoop, len(l))
	for i, c := range l {
		out[i] = c.Translate(v)
	}
	return out
}

// AtElevation returns a copy of the loop flattened to height z.
func (l CurveLoop) AtElevation(z float64) CurveLoop {
	out := make(CurveLoop, len(l))
	for i, c := range l {
		out[i] = c.AtElevation(z)
	}
	return out
}

// Reverse returns the loop traversed in the opposite direction.
func (l CurveLoop) Reverse() CurveLoop {
	out := make(CurveLoop, len(l))
	for i, c := range l {
		out[len(l)-1-i] = c.Reverse()
	}
	return out
}

// Tessellate returns the closed polygon approximating the loop, without
// repeating the closing point.
func (l CurveLoop) Tessellate() []XYZ {
	var out []XYZ
	for _, c := range l {
		pts := c.Tessellate()
		if len(pts) == 0 {
			continue
		}
		// Drop the end point; the next curve starts there.
		out = append(out, pts[:len(pts)-1]...)
	}
	return out
}

// SignedArea returns the XY shoelace area; positive when counter-clockwise.
func (l CurveLoop) SignedArea() float64 {
	pts := l.Tessellate()
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// Area returns the absolute XY area enclosed by the loop.
func (l CurveLoop) Area() float64 {
	return math.Abs(l.SignedArea())
}
