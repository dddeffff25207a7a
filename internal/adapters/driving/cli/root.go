// Package cli provides the floorcopy command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/floorcopy/internal/adapters/driven/modelfile"
	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
	"github.com/custodia-labs/floorcopy/internal/logger"
)

// version is set at build time.
var version = "dev"

// verbose enables debug logging for every command.
var verbose bool

// Model is the open building model the commands read and author.
type Model interface {
	modelfile.Target
	driven.GeometrySource

	Level(ctx context.Context, id domain.ElementID) (*domain.Level, error)
	FloorType(ctx context.Context, id domain.ElementID) (*domain.FloorType, error)
}

// FloorCopyFactory builds a copy service reading the given settings.
// Commands use it to apply one-off overrides from flags.
type FloorCopyFactory func(settings driving.SettingsService) driving.FloorCopyService

// Services holds what the commands need.
type Services struct {
	Model     Model
	Settings  driving.SettingsService
	FloorCopy FloorCopyFactory
}

var (
	model               Model
	settingsService     driving.SettingsService
	newFloorCopyService FloorCopyFactory
)

var rootCmd = &cobra.Command{
	Use:   "floorcopy",
	Short: "Duplicate floor slabs together with their openings",
	Long: `floorcopy duplicates a floor slab of a building model, moves the copy
vertically and rebuilds every opening of the source on it.

Openings are rebuilt either as explicit openings (direct strategy) or by
subtracting temporary floors from the copy (boolean strategy).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices wires the services used by the commands.
func SetServices(s Services) {
	model = s.Model
	settingsService = s.Settings
	newFloorCopyService = s.FloorCopy
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
