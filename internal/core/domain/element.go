package domain

// ElementID identifies an element in a building model document.
type ElementID string

// String returns the string representation.
func (id ElementID) String() string {
	return string(id)
}

// Category classifies model elements.
type Category string

// Element categories known to the core.
const (
	CategoryFloor     Category = "floor"
	CategoryOpening   Category = "opening"
	CategoryLevel     Category = "level"
	CategoryFloorType Category = "floor_type"
	CategoryOther     Category = "other"
)

// Element is the category-level view of any model element.
type Element struct {
	ID       ElementID
	Category Category
	Name     string
}

// ElementFilter decides whether an element may be selected.
type ElementFilter func(Element) bool

// IsFloor is the selection capability predicate for floor elements.
func IsFloor(e Element) bool {
	return e.Category == CategoryFloor
}

// Level is a named horizontal datum floors are hosted on.
type Level struct {
	ID        ElementID `json:"id"`
	Name      string    `json:"name"`
	Elevation float64   `json:"elevation"`
}

// FloorType carries the style parameters of a floor.
type FloorType struct {
	ID        ElementID `json:"id"`
	Name      string    `json:"name"`
	Thickness float64   `json:"thickness"`
}

// Floor is a persisted floor slab.
type Floor struct {
	ID         ElementID `json:"id"`
	Name       string    `json:"name"`
	TypeID     ElementID `json:"type_id"`
	LevelID    ElementID `json:"level_id"`
	Structural bool      `json:"structural"`

	// Boundary is the outer boundary of the slab in plan.
	Boundary CurveLoop `json:"boundary"`

	// Offset is the height of the top face above the level elevation.
	Offset float64 `json:"offset"`

	// Temporary marks scaffolding floors created during boolean copies.
	Temporary bool `json:"temporary"`
}

// Element returns the category-level view of the floor.
func (f *Floor) Element() Element {
	return Element{ID: f.ID, Category: CategoryFloor, Name: f.Name}
}

// Opening is a hole cut into a host floor.
type Opening struct {
	ID     ElementID `json:"id"`
	HostID ElementID `json:"host_id"`
	Loop   CurveLoop `json:"loop"`
	Cut    bool      `json:"cut"`
}

// Element returns the category-level view of the opening.
func (o *Opening) Element() Element {
	return Element{ID: o.ID, Category: CategoryOpening}
}

// CommitStatus is the outcome of committing a modification scope.
type CommitStatus string

// Commit outcomes.
const (
	CommitCommitted  CommitStatus = "committed"
	CommitRolledBack CommitStatus = "rolled_back"
	CommitFailed     CommitStatus = "failed"
)
