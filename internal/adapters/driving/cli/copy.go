package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/floorcopy/internal/adapters/driving/tui"
	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
)

var copyCmd = &cobra.Command{
	Use:   "copy [floor]",
	Short: "Duplicate a floor with its openings",
	Long: `Duplicate a floor, given by ID or name, and move the copy vertically.

Without an argument a floor is picked interactively: from a full-screen
list on a terminal, or by number when input is piped.
Flags override the stored settings for this run only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

// Per-run overrides. Empty strings mean "use the stored setting".
var (
	copyStrategy        string
	copyOffset          string
	copyKeepScaffolding bool
)

func init() {
	copyCmd.Flags().StringVarP(&copyStrategy, "strategy", "s", "", "Opening strategy: direct or boolean")
	copyCmd.Flags().StringVarP(&copyOffset, "offset", "o", "", "Vertical offset of the copy")
	copyCmd.Flags().BoolVar(&copyKeepScaffolding, "keep-scaffolding", false, "Keep the temporary floors of a boolean copy")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if model == nil || newFloorCopyService == nil {
		return errors.New("floor copy service not configured")
	}

	overrides, err := copyOverrides()
	if err != nil {
		return err
	}
	service := newFloorCopyService(&overlaySettings{SettingsService: settingsService, apply: overrides})

	ctx := context.Background()
	var result *domain.CopyResult
	if len(args) == 0 {
		result, err = service.CopySelected(ctx, selectionFor(cmd))
	} else {
		var f *domain.Floor
		f, err = resolveFloor(ctx, args[0])
		if err != nil {
			return err
		}
		result, err = service.Copy(ctx, f.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to copy floor: %w", err)
	}

	if result.Cancelled {
		cmd.Println("Cancelled.")
		return nil
	}

	cmd.Printf("Copied floor %s to %s\n\n", result.Source, result.Floor)
	cmd.Printf("  Strategy:     %s\n", result.Strategy.Description())
	cmd.Printf("  Offset:       %g\n", result.Offset)
	cmd.Printf("  Openings:     %d\n", len(result.Openings))
	if result.Strategy == domain.StrategyBoolean {
		cmd.Printf("  Subtractions: %d\n", result.Subtractions)
		cmd.Printf("  Disposed:     %d\n", len(result.Disposed))
	}
	for _, id := range result.Kept {
		cmd.Printf("  Kept temporary floor: %s\n", id)
	}
	return nil
}

// selectionFor returns the full-screen picker on a terminal and a
// numbered prompt otherwise.
func selectionFor(cmd *cobra.Command) driven.Selection {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return tui.NewPicker(model)
	}
	return &promptSelection{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
}

// copyOverrides turns the copy flags into an edit of the stored settings.
func copyOverrides() (func(*domain.CopySettings), error) {
	var edits []func(*domain.CopySettings)

	if copyStrategy != "" {
		s := domain.Strategy(copyStrategy)
		if !s.IsValid() {
			return nil, fmt.Errorf("invalid strategy %q (use direct or boolean)", copyStrategy)
		}
		edits = append(edits, func(c *domain.CopySettings) { c.Strategy = s })
	}
	if copyOffset != "" {
		v, err := strconv.ParseFloat(copyOffset, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", copyOffset, err)
		}
		edits = append(edits, func(c *domain.CopySettings) { c.Offset = v })
	}
	if copyKeepScaffolding {
		edits = append(edits, func(c *domain.CopySettings) { c.KeepScaffolding = true })
	}

	return func(c *domain.CopySettings) {
		for _, edit := range edits {
			edit(c)
		}
	}, nil
}

// overlaySettings applies per-run edits on top of the stored settings
// without persisting them.
type overlaySettings struct {
	driving.SettingsService
	apply func(*domain.CopySettings)
}

func (o *overlaySettings) Get() (*domain.AppSettings, error) {
	var settings domain.AppSettings
	if o.SettingsService == nil {
		settings = domain.DefaultAppSettings()
	} else {
		stored, err := o.SettingsService.Get()
		if err != nil {
			return nil, err
		}
		settings = *stored
	}
	if o.apply != nil {
		o.apply(&settings.Copy)
	}
	return &settings, nil
}
