// Command floorcopy duplicates floor slabs of a building model.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/floorcopy/internal/adapters/driven/config/file"
	hostmemory "github.com/custodia-labs/floorcopy/internal/adapters/driven/host/memory"
	"github.com/custodia-labs/floorcopy/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/floorcopy/internal/adapters/driving/cli"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
	"github.com/custodia-labs/floorcopy/internal/core/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open config: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read settings: %v\n", err)
		return err
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open model store: %v\n", err)
		return err
	}
	defer store.Close()

	doc, err := hostmemory.Open(ctx, store.ModelStore())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load model: %v\n", err)
		return err
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Model:    doc,
		Settings: settingsService,
		FloorCopy: func(s driving.SettingsService) driving.FloorCopyService {
			return services.NewFloorCopyService(doc, s)
		},
	})

	return cli.Execute()
}
