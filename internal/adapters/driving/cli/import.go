package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/floorcopy/internal/adapters/driven/modelfile"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a model description",
	Long: `Import levels, floor types and floors from a .toml or .yaml model file.

Floors keep their identity across imports, so importing an edited file
replaces the floors it created earlier. With --watch the file is imported
again every time it is saved, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// importWatch keeps re-importing the file on change.
var importWatch bool

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "Re-import the file whenever it changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if model == nil {
		return errors.New("model not configured")
	}

	path := args[0]
	ctx := context.Background()

	m, err := modelfile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load model file: %w", err)
	}
	res, err := modelfile.Import(ctx, model, m)
	if err != nil {
		return fmt.Errorf("failed to import model: %w", err)
	}
	printImport(cmd, path, res)

	if !importWatch {
		return nil
	}

	watcher, err := modelfile.NewWatcher(path, func(ctx context.Context, m *modelfile.Model) error {
		res, err := modelfile.Import(ctx, model, m)
		if err != nil {
			cmd.PrintErrf("Import failed: %v\n", err)
			return err
		}
		printImport(cmd, path, res)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch model file: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", watcher.Path())
	return watcher.Run(ctx)
}

func printImport(cmd *cobra.Command, path string, res *modelfile.Result) {
	cmd.Printf("Imported %s\n", path)
	cmd.Printf("  Levels:      %d\n", res.Levels)
	cmd.Printf("  Floor types: %d\n", res.FloorTypes)
	cmd.Printf("  Floors:      %d", res.Floors)
	if res.Replaced > 0 {
		cmd.Printf(" (%d replaced)", res.Replaced)
	}
	cmd.Println()
	cmd.Printf("  Openings:    %d\n", res.Openings)
}
