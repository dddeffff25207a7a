package modelfile

import (
	"fmt"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Model is the content of a model file.
type Model struct {
	Levels     []Level     `toml:"levels" yaml:"levels"`
	FloorTypes []FloorType `toml:"floor_types" yaml:"floor_types"`
	Floors     []Floor     `toml:"floors" yaml:"floors"`
}

// Level declares a named datum.
type Level struct {
	Name      string  `toml:"name" yaml:"name"`
	Elevation float64 `toml:"elevation" yaml:"elevation"`
}

// FloorType declares a named slab style.
type FloorType struct {
	Name      string  `toml:"name" yaml:"name"`
	Thickness float64 `toml:"thickness" yaml:"thickness"`
}

// Floor declares a slab by referencing a type and a level by name.
type Floor struct {
	Name       string `toml:"name" yaml:"name"`
	Type       string `toml:"type" yaml:"type"`
	Level      string `toml:"level" yaml:"level"`
	Structural bool   `toml:"structural" yaml:"structural"`

	// Offset is the height of the top face above the level.
	Offset float64 `toml:"offset" yaml:"offset"`

	Boundary Outline   `toml:"boundary" yaml:"boundary"`
	Holes    []Outline `toml:"holes" yaml:"holes"`
}

// Outline is a closed plan shape. Exactly one of Rect, Polygon or Curves
// must be set.
type Outline struct {
	// Rect is [x0, y0, x1, y1].
	Rect []float64 `toml:"rect,omitempty" yaml:"rect,omitempty"`

	// Polygon lists [x, y] vertices; the last connects back to the first.
	Polygon [][]float64 `toml:"polygon,omitempty" yaml:"polygon,omitempty"`

	// Curves is a closed chain of segments.
	Curves []Segment `toml:"curves,omitempty" yaml:"curves,omitempty"`
}

// Segment is one curve of an outline. Points are [x, y] pairs: two for a
// line, start, mid and end for an arc, and control points for a spline.
type Segment struct {
	Kind   string      `toml:"kind" yaml:"kind"`
	Points [][]float64 `toml:"points" yaml:"points"`
}

// Loop converts the outline into a curve loop at elevation z.
func (o Outline) Loop(z float64) (domain.CurveLoop, error) {
	set := 0
	if o.Rect != nil {
		set++
	}
	if o.Polygon != nil {
		set++
	}
	if o.Curves != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: outline needs exactly one of rect, polygon or curves", domain.ErrInvalidInput)
	}

	var loop domain.CurveLoop
	switch {
	case o.Rect != nil:
		if len(o.Rect) != 4 {
			return nil, fmt.Errorf("%w: rect needs 4 values, got %d", domain.ErrInvalidInput, len(o.Rect))
		}
		x0, y0, x1, y1 := o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3]
		if x1 <= x0 || y1 <= y0 {
			return nil, fmt.Errorf("%w: rect corners must be ordered min then max", domain.ErrInvalidInput)
		}
		loop = polygon([]domain.XYZ{
			{X: x0, Y: y0, Z: z}, {X: x1, Y: y0, Z: z}, {X: x1, Y: y1, Z: z}, {X: x0, Y: y1, Z: z},
		})

	case o.Polygon != nil:
		if len(o.Polygon) < 3 {
			return nil, fmt.Errorf("%w: polygon needs at least 3 vertices", domain.ErrInvalidInput)
		}
		pts, err := points(o.Polygon, z)
		if err != nil {
			return nil, err
		}
		loop = polygon(pts)

	default:
		loop = make(domain.CurveLoop, 0, len(o.Curves))
		for i, s := range o.Curves {
			pts, err := points(s.Points, z)
			if err != nil {
				return nil, fmt.Errorf("curve %d: %w", i, err)
			}
			loop = append(loop, domain.Curve{Kind: domain.CurveKind(s.Kind), Points: pts})
		}
	}

	if err := loop.Validate(); err != nil {
		return nil, err
	}
	return loop, nil
}

func polygon(pts []domain.XYZ) domain.CurveLoop {
	loop := make(domain.CurveLoop, len(pts))
	for i, p := range pts {
		loop[i] = domain.NewLine(p, pts[(i+1)%len(pts)])
	}
	return loop
}

func points(raw [][]float64, z float64) ([]domain.XYZ, error) {
	out := make([]domain.XYZ, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d needs [x, y]", domain.ErrInvalidInput, i)
		}
		out[i] = domain.XYZ{X: p[0], Y: p[1], Z: z}
	}
	return out, nil
}
