package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1, z float64) CurveLoop {
	return CurveLoop{
		NewLine(XYZ{x0, y0, z}, XYZ{x1, y0, z}),
		NewLine(XYZ{x1, y0, z}, XYZ{x1, y1, z}),
		NewLine(XYZ{x1, y1, z}, XYZ{x0, y1, z}),
		NewLine(XYZ{x0, y1, z}, XYZ{x0, y0, z}),
	}
}

func TestXYZ_Arithmetic(t *testing.T) {
	a := XYZ{1, 2, 3}
	b := XYZ{4, 5, 6}

	assert.Equal(t, XYZ{5, 7, 9}, a.Add(b))
	assert.Equal(t, XYZ{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, XYZ{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, XYZ{-3, 6, -3}, a.Cross(b))
	assert.Equal(t, XYZ{-1, -2, -3}, a.Negate())
	assert.InDelta(t, 5.0, XYZ{3, 4, 0}.Length(), 1e-12)
}

func TestXYZ_Normalize(t *testing.T) {
	n := XYZ{0, 0, 7}.Normalize()
	assert.Equal(t, BasisZ, n)

	// Zero vector is left alone.
	assert.Equal(t, XYZ{}, XYZ{}.Normalize())
}

func TestXYZ_IsAlmostEqualTo(t *testing.T) {
	a := XYZ{1, 1, 1}
	assert.True(t, a.IsAlmostEqualTo(XYZ{1 + 1e-9, 1, 1}, PointTolerance))
	assert.False(t, a.IsAlmostEqualTo(XYZ{1.1, 1, 1}, PointTolerance))
}

func TestCurveKind_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		kind     CurveKind
		expected bool
	}{
		{"line is valid", CurveLine, true},
		{"arc is valid", CurveArc, true},
		{"spline is valid", CurveSpline, true},
		{"empty is invalid", CurveKind(""), false},
		{"unknown is invalid", CurveKind("nurbs"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.IsValid())
		})
	}
}

func TestCurve_Validate(t *testing.T) {
	tests := []struct {
		name    string
		curve   Curve
		wantErr bool
	}{
		{"line", NewLine(XYZ{0, 0, 0}, XYZ{1, 0, 0}), false},
		{"zero length line", NewLine(XYZ{1, 1, 0}, XYZ{1, 1, 0}), true},
		{"line with three points", Curve{Kind: CurveLine, Points: []XYZ{{}, {X: 1}, {X: 2}}}, true},
		{"arc", NewArc(XYZ{1, 0, 0}, XYZ{0, 1, 0}, XYZ{-1, 0, 0}), false},
		{"collinear arc", NewArc(XYZ{0, 0, 0}, XYZ{1, 0, 0}, XYZ{2, 0, 0}), true},
		{"spline", NewSpline(XYZ{0, 0, 0}, XYZ{1, 1, 0}, XYZ{2, 0, 0}), false},
		{"short spline", NewSpline(XYZ{0, 0, 0}), true},
		{"unknown kind", Curve{Kind: "nurbs"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.curve.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCurve_StartEnd(t *testing.T) {
	c := NewLine(XYZ{0, 0, 0}, XYZ{3, 4, 0})
	assert.Equal(t, XYZ{0, 0, 0}, c.Start())
	assert.Equal(t, XYZ{3, 4, 0}, c.End())
	assert.InDelta(t, 5.0, c.Length(), 1e-12)

	var empty Curve
	assert.Equal(t, XYZ{}, empty.Start())
	assert.Equal(t, XYZ{}, empty.End())
}

func TestCurve_TranslateDoesNotAlias(t *testing.T) {
	c := NewLine(XYZ{0, 0, 0}, XYZ{1, 0, 0})
	moved := c.Translate(XYZ{Z: 10})

	assert.Equal(t, XYZ{0, 0, 10}, moved.Start())
	assert.Equal(t, XYZ{0, 0, 0}, c.Start())
}

func TestCurve_Reverse(t *testing.T) {
	c := NewArc(XYZ{1, 0, 0}, XYZ{0, 1, 0}, XYZ{-1, 0, 0})
	r := c.Reverse()

	assert.Equal(t, c.End(), r.Start())
	assert.Equal(t, c.Start(), r.End())
	assert.Equal(t, CurveArc, r.Kind)
}

func TestCurve_TessellateArc(t *testing.T) {
	// Upper half circle of radius 1, counter-clockwise.
	c := NewArc(XYZ{1, 0, 0}, XYZ{0, 1, 0}, XYZ{-1, 0, 0})
	pts := c.Tessellate()

	require.Len(t, pts, arcSegments+1)
	assert.Equal(t, c.Start(), pts[0])
	assert.Equal(t, c.End(), pts[len(pts)-1])
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-9)
		assert.GreaterOrEqual(t, p.Y, -1e-9)
	}
	assert.InDelta(t, math.Pi, c.Length(), 0.01)
}

func TestCurve_TessellateArcClockwise(t *testing.T) {
	// Lower half circle traversed clockwise through (0,-1).
	c := NewArc(XYZ{-1, 0, 0}, XYZ{0, -1, 0}, XYZ{1, 0, 0})
	for _, p := range c.Tessellate() {
		assert.LessOrEqual(t, p.Y, 1e-9)
	}
}

func TestCurveLoop_Area(t *testing.T) {
	loop := rect(0, 0, 4, 3, 0)

	assert.InDelta(t, 12.0, loop.Area(), 1e-9)
	assert.InDelta(t, 12.0, loop.SignedArea(), 1e-9)
	assert.InDelta(t, -12.0, loop.Reverse().SignedArea(), 1e-9)
}

func TestCurveLoop_AreaWithArc(t *testing.T) {
	// Half disc of radius 1: an arc plus its diameter.
	loop := CurveLoop{
		NewArc(XYZ{1, 0, 0}, XYZ{0, 1, 0}, XYZ{-1, 0, 0}),
		NewLine(XYZ{-1, 0, 0}, XYZ{1, 0, 0}),
	}

	assert.InDelta(t, math.Pi/2, loop.Area(), 0.01)
	assert.NoError(t, loop.Validate())
}

func TestCurveLoop_Validate(t *testing.T) {
	assert.NoError(t, rect(0, 0, 1, 1, 0).Validate())
	assert.ErrorIs(t, CurveLoop{}.Validate(), ErrInvalidInput)

	open := CurveLoop{
		NewLine(XYZ{0, 0, 0}, XYZ{1, 0, 0}),
		NewLine(XYZ{1, 0, 0}, XYZ{1, 1, 0}),
	}
	assert.ErrorIs(t, open.Validate(), ErrInvalidInput)
}

func TestCurveLoop_AtElevation(t *testing.T) {
	loop := rect(0, 0, 1, 1, 0).AtElevation(5)
	for _, c := range loop {
		for _, p := range c.Points {
			assert.Equal(t, 5.0, p.Z)
		}
	}
	assert.Equal(t, 4, loop.Len())
}
