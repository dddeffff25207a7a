package domain

// Reconstruction is what a strategy built for one source floor.
type Reconstruction struct {
	// Floor is the new floor.
	Floor ElementID

	// Openings are the explicit openings created on Floor.
	Openings []ElementID

	// Scaffolding are temporary floors the caller must dispose of.
	Scaffolding []ElementID

	// Subtractions counts boolean differences applied to Floor's solid.
	Subtractions int
}

// CopyResult summarises a completed floor copy.
type CopyResult struct {
	Source       ElementID
	Floor        ElementID
	Strategy     Strategy
	Openings     []ElementID
	Subtractions int

	// Disposed are the scaffolding floors deleted after the copy.
	Disposed []ElementID

	// Kept are scaffolding floors left in the document.
	Kept []ElementID

	// Offset is the vertical move applied to Floor.
	Offset float64

	// Cancelled is set when selection was abandoned; nothing was created.
	Cancelled bool
}
