package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
)

// Ensure promptSelection implements the interface.
var _ driven.Selection = (*promptSelection)(nil)

// promptSelection lists the candidate elements and reads a choice.
// An empty answer cancels.
type promptSelection struct {
	in  io.Reader
	out io.Writer
}

func (s *promptSelection) Pick(ctx context.Context, filter domain.ElementFilter, prompt string) (domain.ElementID, error) {
	floors, err := model.ListFloors(ctx)
	if err != nil {
		return "", fmt.Errorf("list floors: %w", err)
	}

	var candidates []domain.Floor
	for i := range floors {
		if filter == nil || filter(floors[i].Element()) {
			candidates = append(candidates, floors[i])
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no selectable floors: %w", domain.ErrNotFound)
	}

	for i, f := range candidates {
		fmt.Fprintf(s.out, "  %d) %s  %s\n", i+1, f.Name, f.ID)
	}
	fmt.Fprintf(s.out, "%s [1-%d, empty to cancel]: ", prompt, len(candidates))

	line := readLine(bufio.NewReader(s.in))
	if line == "" {
		return "", domain.ErrSelectionCancelled
	}
	n := parseChoice(line, len(candidates), 0)
	if n == 0 {
		return "", fmt.Errorf("%w: invalid choice %q", domain.ErrInvalidInput, line)
	}
	return candidates[n-1].ID, nil
}
