package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/floorcopy/internal/adapters/driven/modelfile"
	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

func TestFloorCmd_HasSubcommands(t *testing.T) {
	commandNames := make([]string, 0)
	for _, cmd := range floorCmd.Commands() {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
}

func TestFloorListCmd_ErrorsWithoutModel(t *testing.T) {
	SetServices(Services{})

	_, err := execute(t, "", "floor", "list")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model not configured")
}

func TestFloorListCmd_Empty(t *testing.T) {
	setupTestServices(t, false)

	out, err := execute(t, "", "floor", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No floors in model.")
}

func TestFloorListCmd_ListsFloors(t *testing.T) {
	setupTestServices(t, true)

	out, err := execute(t, "", "floor", "list")

	require.NoError(t, err)
	assert.Contains(t, out, string(modelfile.ElementID("floor", "Deck")))
	assert.Contains(t, out, "Name:     Deck")
	assert.Contains(t, out, "Ground (elevation 0)")
	assert.Contains(t, out, "Openings: 1")
	assert.Contains(t, out, "Total: 1 floors")
}

func TestFloorShowCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t, true)

	_, err := execute(t, "", "floor", "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestFloorShowCmd_ByName(t *testing.T) {
	setupTestServices(t, true)

	out, err := execute(t, "", "floor", "show", "Deck")

	require.NoError(t, err)
	assert.Contains(t, out, "Name:       Deck")
	assert.Contains(t, out, "Type:       Slab (thickness 1)")
	assert.Contains(t, out, "Boundary:   4 curves (4 line), area 80")
	assert.Contains(t, out, "Openings:")
	assert.Contains(t, out, "Volume: 76")
}

func TestFloorShowCmd_ByID(t *testing.T) {
	setupTestServices(t, true)

	out, err := execute(t, "", "floor", "show", string(modelfile.ElementID("floor", "Deck")))

	require.NoError(t, err)
	assert.Contains(t, out, "Name:       Deck")
}

func TestFloorShowCmd_Unknown(t *testing.T) {
	setupTestServices(t, true)

	_, err := execute(t, "", "floor", "show", "Roof")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFloorShowCmd_AmbiguousName(t *testing.T) {
	env := setupTestServices(t, true)
	_, err := env.doc.AddFloor(context.Background(), domain.Floor{
		Name:     "Deck",
		TypeID:   modelfile.ElementID("floor_type", "Slab"),
		LevelID:  modelfile.ElementID("level", "Ground"),
		Boundary: rectLoop(20, 0, 24, 4, 0),
	})
	require.NoError(t, err)

	_, err = execute(t, "", "floor", "show", "Deck")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDescribeLoop(t *testing.T) {
	loop := domain.CurveLoop{
		domain.NewLine(domain.XYZ{}, domain.XYZ{X: 4}),
		domain.NewArc(domain.XYZ{X: 4}, domain.XYZ{X: 2, Y: 2}, domain.XYZ{}),
	}

	assert.Equal(t, "2 curves (1 line, 1 arc)", describeLoop(loop))
}

func rectLoop(x0, y0, x1, y1, z float64) domain.CurveLoop {
	a := domain.XYZ{X: x0, Y: y0, Z: z}
	b := domain.XYZ{X: x1, Y: y0, Z: z}
	c := domain.XYZ{X: x1, Y: y1, Z: z}
	d := domain.XYZ{X: x0, Y: y1, Z: z}
	return domain.CurveLoop{
		domain.NewLine(a, b), domain.NewLine(b, c), domain.NewLine(c, d), domain.NewLine(d, a),
	}
}
