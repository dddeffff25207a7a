package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Geometry Errors.

	// ErrNoTopFace indicates a solid has no horizontal planar face.
	ErrNoTopFace = errors.New("floor does not have a top face")

	// ErrNoEdgeLoops indicates the top face has an empty loop collection.
	ErrNoEdgeLoops = errors.New("floor top face does not have edges")

	// ErrNoSolidGeometry indicates an element's geometry holds no solid.
	// Also returned when a freshly created floor is queried before commit.
	ErrNoSolidGeometry = errors.New("element has no solid geometry")

	// ErrUnsupportedBoolean indicates the kernel cannot combine the operands.
	ErrUnsupportedBoolean = errors.New("unsupported boolean operation")

	// Document Errors.

	// ErrNotAFloor indicates the selected element is not a floor.
	ErrNotAFloor = errors.New("element is not a floor")

	// ErrNoOpenScope indicates a modification was attempted outside a scope.
	ErrNoOpenScope = errors.New("no modification scope is open")

	// ErrScopeAlreadyOpen indicates a scope was started while another is open.
	ErrScopeAlreadyOpen = errors.New("modification scope already open")

	// ErrCommitFailed indicates a scope did not commit.
	ErrCommitFailed = errors.New("commit failed")

	// ErrSelectionCancelled indicates the user abandoned element selection.
	// It is not a failure of the copy operation.
	ErrSelectionCancelled = errors.New("selection cancelled")
)
