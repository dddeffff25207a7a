package modelfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

const sampleTOML = `
[[levels]]
name = "Ground"
elevation = 0.0

[[levels]]
name = "First"
elevation = 3.5

[[floor_types]]
name = "Slab 200"
thickness = 0.2

[[floors]]
name = "Deck"
type = "Slab 200"
level = "Ground"
offset = 0.5
boundary = { rect = [0.0, 0.0, 10.0, 8.0] }
holes = [
  { rect = [2.0, 2.0, 4.0, 4.0] },
  { polygon = [[6.0, 2.0], [8.0, 2.0], [8.0, 4.0]] },
]

[[floors]]
name = "Balcony"
type = "Slab 200"
level = "First"
structural = true

[floors.boundary]
curves = [
  { kind = "line", points = [[0.0, 0.0], [4.0, 0.0]] },
  { kind = "arc", points = [[4.0, 0.0], [2.0, 2.0], [0.0, 0.0]] },
]
`

const sampleYAML = `
levels:
  - name: Ground
    elevation: 0
  - name: First
    elevation: 3.5
floor_types:
  - name: Slab 200
    thickness: 0.2
floors:
  - name: Deck
    type: Slab 200
    level: Ground
    offset: 0.5
    boundary:
      rect: [0, 0, 10, 8]
    holes:
      - rect: [2, 2, 4, 4]
      - polygon: [[6, 2], [8, 2], [8, 4]]
  - name: Balcony
    type: Slab 200
    level: First
    structural: true
    boundary:
      curves:
        - kind: line
          points: [[0, 0], [4, 0]]
        - kind: arc
          points: [[4, 0], [2, 2], [0, 0]]
`

func sampleModel() *Model {
	return &Model{
		Levels: []Level{
			{Name: "Ground", Elevation: 0},
			{Name: "First", Elevation: 3.5},
		},
		FloorTypes: []FloorType{{Name: "Slab 200", Thickness: 0.2}},
		Floors: []Floor{
			{
				Name:     "Deck",
				Type:     "Slab 200",
				Level:    "Ground",
				Offset:   0.5,
				Boundary: Outline{Rect: []float64{0, 0, 10, 8}},
				Holes: []Outline{
					{Rect: []float64{2, 2, 4, 4}},
					{Polygon: [][]float64{{6, 2}, {8, 2}, {8, 4}}},
				},
			},
			{
				Name:       "Balcony",
				Type:       "Slab 200",
				Level:      "First",
				Structural: true,
				Boundary: Outline{Curves: []Segment{
					{Kind: "line", Points: [][]float64{{0, 0}, {4, 0}}},
					{Kind: "arc", Points: [][]float64{{4, 0}, {2, 2}, {0, 0}}},
				}},
			},
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "toml", data: sampleTOML, format: FormatTOML},
		{name: "yaml", data: sampleYAML, format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.data), tt.format)

			require.NoError(t, err)
			if diff := cmp.Diff(sampleModel(), m); diff != "" {
				t.Errorf("model mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[[levels]]\nname = \"G\"\nheight = 1.0\n"), FormatTOML)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Parse([]byte("levels:\n  - name: G\n    height: 1\n"), FormatYAML)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("[[levels"), FormatTOML)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Parse([]byte("levels: [unclosed"), FormatYAML)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Parse([]byte("{}"), "json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParse_EmptyDocuments(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		m, err := Parse([]byte("\n"), format)

		require.NoError(t, err)
		assert.Empty(t, m.Floors)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "model.toml", want: FormatTOML},
		{path: "dir/model.YAML", want: FormatYAML},
		{path: "model.yml", want: FormatYAML},
		{path: "model.json", wantErr: true},
		{path: "model", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0600))

	m, err := Load(path)

	require.NoError(t, err)
	assert.Len(t, m.Floors, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
