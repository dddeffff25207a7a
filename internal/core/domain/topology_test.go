package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdge_AsCurve(t *testing.T) {
	c := NewLine(XYZ{0, 0, 0}, XYZ{1, 0, 0})
	e := Edge{Curve: c}
	assert.Equal(t, c, e.AsCurve())
}

func TestEdgeLoopFromCurves_PreservesOrder(t *testing.T) {
	loop := rect(0, 0, 2, 2, 0)
	edges := EdgeLoopFromCurves(loop)

	assert.Len(t, edges, 4)
	for i := range loop {
		assert.Equal(t, loop[i], edges[i].AsCurve())
	}
}

func TestFace_IsHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		face     Face
		expected bool
	}{
		{"planar up", Face{Kind: FacePlanar, Normal: XYZ{0, 0, 1}}, true},
		{"planar down", Face{Kind: FacePlanar, Normal: XYZ{0, 0, -1}}, true},
		{"planar side", Face{Kind: FacePlanar, Normal: XYZ{1, 0, 0}}, false},
		{"slightly tilted", Face{Kind: FacePlanar, Normal: XYZ{1e-6, 0, 1}}, false},
		{"within tolerance", Face{Kind: FacePlanar, Normal: XYZ{1e-10, -1e-10, 1}}, true},
		{"cylindrical", Face{Kind: FaceCylindrical, Normal: XYZ{0, 0, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.face.IsHorizontal(HorizontalTolerance))
		})
	}
}

func TestGeometryObject_AsSolid(t *testing.T) {
	s := &Solid{}

	got, ok := SolidObject(s).AsSolid()
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = GeometryObject{Kind: GeometryMesh}.AsSolid()
	assert.False(t, ok)

	_, ok = GeometryObject{Kind: GeometryOther}.AsSolid()
	assert.False(t, ok)

	// A solid tag without payload is not usable.
	_, ok = GeometryObject{Kind: GeometrySolid}.AsSolid()
	assert.False(t, ok)
}

func TestIsFloor(t *testing.T) {
	assert.True(t, IsFloor(Element{Category: CategoryFloor}))
	assert.False(t, IsFloor(Element{Category: CategoryOpening}))
	assert.False(t, IsFloor(Element{Category: CategoryLevel}))

	f := &Floor{ID: "f-1", Name: "Slab"}
	assert.True(t, IsFloor(f.Element()))
}
