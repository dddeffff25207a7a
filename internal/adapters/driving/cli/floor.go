package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/kernel"
)

var floorCmd = &cobra.Command{
	Use:   "floor",
	Short: "Inspect floors",
	Long:  `List the floors of the model or show one floor in detail.`,
}

var floorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all floors",
	Args:  cobra.NoArgs,
	RunE:  runFloorList,
}

var floorShowCmd = &cobra.Command{
	Use:   "show [floor]",
	Short: "Show floor details",
	Long:  `Show a floor by ID or by name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFloorShow,
}

func init() {
	floorCmd.AddCommand(floorListCmd)
	floorCmd.AddCommand(floorShowCmd)
	rootCmd.AddCommand(floorCmd)
}

func runFloorList(cmd *cobra.Command, _ []string) error {
	if model == nil {
		return errors.New("model not configured")
	}

	ctx := context.Background()
	floors, err := model.ListFloors(ctx)
	if err != nil {
		return fmt.Errorf("failed to list floors: %w", err)
	}

	if len(floors) == 0 {
		cmd.Println("No floors in model.")
		cmd.Println("Run 'floorcopy import <file>' to add some.")
		return nil
	}

	cmd.Println("Floors:")
	cmd.Println()
	for i := range floors {
		f := &floors[i]
		openings, err := model.Openings(ctx, f.ID)
		if err != nil {
			return fmt.Errorf("failed to list openings: %w", err)
		}
		name := f.Name
		if name == "" {
			name = "(unnamed)"
		}
		if f.Temporary {
			name += " [temporary]"
		}
		cmd.Printf("  %s\n", f.ID)
		cmd.Printf("    Name:     %s\n", name)
		cmd.Printf("    Level:    %s\n", levelLabel(ctx, f.LevelID))
		cmd.Printf("    Openings: %d\n", len(openings))
		cmd.Println()
	}

	cmd.Printf("Total: %d floors\n", len(floors))
	return nil
}

func runFloorShow(cmd *cobra.Command, args []string) error {
	if model == nil {
		return errors.New("model not configured")
	}

	ctx := context.Background()
	f, err := resolveFloor(ctx, args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Floor: %s\n\n", f.ID)
	cmd.Printf("  Name:       %s\n", f.Name)
	cmd.Printf("  Level:      %s\n", levelLabel(ctx, f.LevelID))
	if ft, err := model.FloorType(ctx, f.TypeID); err == nil {
		cmd.Printf("  Type:       %s (thickness %g)\n", ft.Name, ft.Thickness)
	} else {
		cmd.Printf("  Type:       %s\n", f.TypeID)
	}
	cmd.Printf("  Offset:     %g\n", f.Offset)
	cmd.Printf("  Structural: %t\n", f.Structural)
	if f.Temporary {
		cmd.Println("  Temporary:  yes")
	}
	cmd.Printf("  Boundary:   %s, area %g\n", describeLoop(f.Boundary), f.Boundary.Area())

	openings, err := model.Openings(ctx, f.ID)
	if err != nil {
		return fmt.Errorf("failed to list openings: %w", err)
	}
	if len(openings) > 0 {
		cmd.Println("\n  Openings:")
		for _, o := range openings {
			cmd.Printf("    %s  %s, area %g\n", o.ID, describeLoop(o.Loop), o.Loop.Area())
		}
	}

	objs, err := model.Geometry(ctx, f.ID, domain.GeometryOptions{})
	if err != nil {
		return fmt.Errorf("failed to read geometry: %w", err)
	}
	for _, obj := range objs {
		solid, ok := obj.AsSolid()
		if !ok {
			continue
		}
		cmd.Println("\n  Geometry:")
		cmd.Printf("    Faces:  %d\n", len(solid.Faces))
		if vol, err := kernel.Volume(solid); err == nil {
			cmd.Printf("    Volume: %g\n", vol)
		}
		break
	}
	return nil
}

// resolveFloor finds a floor by ID, falling back to a unique name match.
func resolveFloor(ctx context.Context, ref string) (*domain.Floor, error) {
	f, err := model.Floor(ctx, domain.ElementID(ref))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to get floor: %w", err)
	}

	floors, err := model.ListFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}
	var matches []domain.Floor
	for _, f := range floors {
		if f.Name == ref {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("floor %q: %w", ref, domain.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d floors are named %q, use an ID", domain.ErrInvalidInput, len(matches), ref)
	}
}

func levelLabel(ctx context.Context, id domain.ElementID) string {
	l, err := model.Level(ctx, id)
	if err != nil {
		return string(id)
	}
	return fmt.Sprintf("%s (elevation %g)", l.Name, l.Elevation)
}

// describeLoop summarises a loop as curve counts per kind.
func describeLoop(loop domain.CurveLoop) string {
	counts := map[domain.CurveKind]int{}
	for _, c := range loop {
		counts[c.Kind]++
	}
	parts := make([]string, 0, 3)
	for _, k := range []domain.CurveKind{domain.CurveLine, domain.CurveArc, domain.CurveSpline} {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	return fmt.Sprintf("%d curves (%s)", len(loop), strings.Join(parts, ", "))
}
