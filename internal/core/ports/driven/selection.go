package driven

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// Selection asks the user to pick an element.
type Selection interface {
	// Pick returns the ID of an element accepted by filter.
	// Returns domain.ErrSelectionCancelled when the user abandons the pick.
	Pick(ctx context.Context, filter domain.ElementFilter, prompt string) (domain.ElementID, error)
}
