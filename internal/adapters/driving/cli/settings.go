package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage copy settings",
	Long: `View and configure how floors are copied.

Settings are stored in ~/.floorcopy/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsStrategyCmd = &cobra.Command{
	Use:   "strategy [direct|boolean]",
	Short: "Set the opening strategy",
	Long: `Set how openings are rebuilt on the copy.

Available strategies:
  direct  - Create one explicit opening per hole of the source
  boolean - Subtract temporary floors shaped like the holes from the copy

Without an argument the strategy is picked from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsStrategy,
}

var settingsOffsetCmd = &cobra.Command{
	Use:   "offset [value]",
	Short: "Set the vertical offset of copies",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsOffset,
}

var settingsInheritStyleCmd = &cobra.Command{
	Use:   "inherit-style [true|false]",
	Short: "Copy the source's floor type and level",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsInheritStyle,
}

var settingsKeepScaffoldingCmd = &cobra.Command{
	Use:   "keep-scaffolding [true|false]",
	Short: "Keep temporary floors after a boolean copy",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsKeepScaffolding,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsStrategyCmd)
	settingsCmd.AddCommand(settingsOffsetCmd)
	settingsCmd.AddCommand(settingsInheritStyleCmd)
	settingsCmd.AddCommand(settingsKeepScaffoldingCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Copy]")
	cmd.Printf("  Strategy:         %s\n", settings.Copy.Strategy.Description())
	cmd.Printf("  Offset:           %g\n", settings.Copy.Offset)
	cmd.Printf("  Inherit style:    %s\n", yesNo(settings.Copy.InheritStyle))
	cmd.Printf("  Structural:       %s\n", yesNo(settings.Copy.Structural))
	cmd.Printf("  Keep scaffolding: %s\n", yesNo(settings.Copy.KeepScaffolding))
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default: ~/.floorcopy/data)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)

	return nil
}

func runSettingsStrategy(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var selected domain.Strategy
	if len(args) == 1 {
		selected = domain.Strategy(args[0])
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())

		cmd.Println("Select Strategy")
		cmd.Println("---------------")
		strategies := domain.AllStrategies()
		for i, s := range strategies {
			cmd.Printf("  %d. %s\n", i+1, s.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(reader), len(strategies), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		selected = strategies[idx-1]
	}

	if err := settingsService.SetStrategy(selected); err != nil {
		return fmt.Errorf("failed to set strategy: %w", err)
	}
	cmd.Printf("Strategy set to: %s\n", selected.Description())
	return nil
}

func runSettingsOffset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	offset, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[0], err)
	}
	if err := settingsService.SetOffset(offset); err != nil {
		return fmt.Errorf("failed to set offset: %w", err)
	}
	cmd.Printf("Offset set to: %g\n", offset)
	return nil
}

func runSettingsInheritStyle(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	on, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	if err := settingsService.SetInheritStyle(on); err != nil {
		return fmt.Errorf("failed to set inherit style: %w", err)
	}
	cmd.Printf("Inherit style: %s\n", yesNo(on))
	return nil
}

func runSettingsKeepScaffolding(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	keep, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	if err := settingsService.SetKeepScaffolding(keep); err != nil {
		return fmt.Errorf("failed to set keep scaffolding: %w", err)
	}
	cmd.Printf("Keep scaffolding: %s\n", yesNo(keep))
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
