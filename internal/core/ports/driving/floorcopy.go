package driving

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
)

// FloorReconstructor builds a duplicate of a floor in a document.
// Implementations differ in how the source's openings are reproduced.
type FloorReconstructor interface {
	// Strategy identifies the implementation.
	Strategy() domain.Strategy

	// Build creates the duplicate floor. The source is read completely
	// before the first modification scope opens, so geometry errors leave
	// the document untouched.
	Build(ctx context.Context, doc driven.Document, sourceID domain.ElementID) (*domain.Reconstruction, error)
}

// FloorCopyService duplicates floors with the configured strategy.
type FloorCopyService interface {
	// Copy duplicates the floor with the given ID.
	Copy(ctx context.Context, floorID domain.ElementID) (*domain.CopyResult, error)

	// CopySelected asks the selection port for a floor and duplicates it.
	// A cancelled selection returns a result with Cancelled set and no error.
	CopySelected(ctx context.Context, selection driven.Selection) (*domain.CopyResult, error)
}
