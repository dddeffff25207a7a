package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/kernel"
	"github.com/custodia-labs/floorcopy/internal/logger"
)

// Ensure Document implements the interface.
var _ driven.Document = (*Document)(nil)

// Document is an in-memory building model with single-writer modification
// scopes. Floors created in a scope have no geometry until it commits.
// When a ModelStore is attached every commit is persisted to it.
type Document struct {
	mu    sync.RWMutex
	state *state
	scope *scope
	store driven.ModelStore
	newID func() domain.ElementID
}

// state is everything that a rollback restores.
type state struct {
	levels     map[domain.ElementID]domain.Level
	levelOrder []domain.ElementID
	types      map[domain.ElementID]domain.FloorType
	typeOrder  []domain.ElementID
	floors     map[domain.ElementID]domain.Floor
	floorOrder []domain.ElementID
	openings   map[domain.ElementID]domain.Opening
	openOrder  []domain.ElementID
	solids     map[domain.ElementID]*domain.Solid
	overrides  map[domain.ElementID][]domain.GeometryObject
}

// scope tracks what changed since BeginScope.
type scope struct {
	name     string
	snapshot *state
	created  map[domain.ElementID]bool
	dirty    map[domain.ElementID]bool
	touched  map[domain.ElementID]bool
	removed  map[domain.ElementID]domain.Category
}

// NewDocument creates an empty in-memory document.
func NewDocument() *Document {
	return &Document{
		state: newState(),
		newID: func() domain.ElementID { return domain.ElementID(uuid.New().String()) },
	}
}

// Open loads a document from a model store and keeps the store attached.
func Open(ctx context.Context, store driven.ModelStore) (*Document, error) {
	model, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	d := NewDocument()
	st := d.state
	for _, l := range model.Levels {
		st.putLevel(l)
	}
	for _, ft := range model.FloorTypes {
		st.putType(ft)
	}
	for _, f := range model.Floors {
		st.putFloor(f)
	}
	for _, o := range model.Openings {
		st.putOpening(o)
	}
	for _, id := range st.floorOrder {
		if s, ok := model.Solids[id]; ok && s != nil {
			st.solids[id] = s
			continue
		}
		if err := st.materialise(id); err != nil {
			return nil, fmt.Errorf("materialise floor %s: %w", id, err)
		}
	}

	d.store = store
	logger.Debug("opened model: %d levels, %d floor types, %d floors, %d openings",
		len(st.levels), len(st.types), len(st.floors), len(st.openings))
	return d, nil
}

// WithIDGenerator replaces the element ID generator. Used in tests.
func (d *Document) WithIDGenerator(fn func() domain.ElementID) *Document {
	d.newID = fn
	return d
}

// ==================== Authoring ====================

// AddLevel stores a level outside any scope. An empty ID is assigned.
func (d *Document) AddLevel(ctx context.Context, level domain.Level) (domain.Level, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if level.ID == "" {
		level.ID = d.newID()
	}
	d.state.putLevel(level)
	if d.store != nil {
		if err := d.store.SaveLevel(ctx, level); err != nil {
			return level, fmt.Errorf("save level: %w", err)
		}
	}
	return level, nil
}

// AddFloorType stores a floor type outside any scope. An empty ID is assigned.
func (d *Document) AddFloorType(ctx context.Context, ft domain.FloorType) (domain.FloorType, error) {
	if ft.Thickness <= 0 {
		return ft, fmt.Errorf("%w: floor type %q needs a positive thickness", domain.ErrInvalidInput, ft.Name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if ft.ID == "" {
		ft.ID = d.newID()
	}
	d.state.putType(ft)
	if d.store != nil {
		if err := d.store.SaveFloorType(ctx, ft); err != nil {
			return ft, fmt.Errorf("save floor type: %w", err)
		}
	}
	return ft, nil
}

// AddFloor stores a floor with its openings outside any scope and
// materialises its geometry immediately.
func (d *Document) AddFloor(ctx context.Context, floor domain.Floor, openings ...domain.CurveLoop) (*domain.Floor, error) {
	if err := floor.Boundary.Validate(); err != nil {
		return nil, fmt.Errorf("floor boundary: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.state
	level, ok := st.levels[floor.LevelID]
	if !ok {
		return nil, fmt.Errorf("level %s: %w", floor.LevelID, domain.ErrNotFound)
	}
	if _, ok := st.types[floor.TypeID]; !ok {
		return nil, fmt.Errorf("floor type %s: %w", floor.TypeID, domain.ErrNotFound)
	}

	if floor.ID == "" {
		floor.ID = d.newID()
	}
	floor.Offset = floor.Boundary[0].Start().Z - level.Elevation
	st.putFloor(floor)

	ops := make([]domain.Opening, 0, len(openings))
	for i, loop := range openings {
		if err := loop.Validate(); err != nil {
			return nil, fmt.Errorf("opening %d: %w", i, err)
		}
		o := domain.Opening{ID: d.newID(), HostID: floor.ID, Loop: loop, Cut: true}
		st.putOpening(o)
		ops = append(ops, o)
	}

	if err := st.materialise(floor.ID); err != nil {
		return nil, err
	}

	if d.store != nil {
		if err := d.persistFloor(ctx, floor.ID); err != nil {
			return nil, err
		}
		for _, o := range ops {
			if err := d.store.SaveOpening(ctx, o); err != nil {
				return nil, fmt.Errorf("save opening: %w", err)
			}
		}
	}

	out := floor
	return &out, nil
}

// OverrideGeometry replaces what Geometry returns for an element.
// Hosts expose arbitrary geometry; this lets callers reproduce it.
func (d *Document) OverrideGeometry(id domain.ElementID, objects ...domain.GeometryObject) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.overrides[id] = objects
}

// ==================== Queries ====================

// Element returns the category-level view of an element.
func (d *Document) Element(_ context.Context, id domain.ElementID) (*domain.Element, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	st := d.state
	if f, ok := st.floors[id]; ok {
		el := f.Element()
		return &el, nil
	}
	if o, ok := st.openings[id]; ok {
		el := o.Element()
		return &el, nil
	}
	if l, ok := st.levels[id]; ok {
		return &domain.Element{ID: id, Category: domain.CategoryLevel, Name: l.Name}, nil
	}
	if t, ok := st.types[id]; ok {
		return &domain.Element{ID: id, Category: domain.CategoryFloorType, Name: t.Name}, nil
	}
	return nil, domain.ErrNotFound
}

// Floor returns a floor by ID.
func (d *Document) Floor(_ context.Context, id domain.ElementID) (*domain.Floor, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	f, ok := d.state.floors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

// ListFloors returns all floors in creation order.
func (d *Document) ListFloors(_ context.Context) ([]domain.Floor, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]domain.Floor, 0, len(d.state.floorOrder))
	for _, id := range d.state.floorOrder {
		result = append(result, d.state.floors[id])
	}
	return result, nil
}

// Openings returns the openings hosted by a floor in creation order.
func (d *Document) Openings(_ context.Context, floorID domain.ElementID) ([]domain.Opening, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state.openingsOf(floorID), nil
}

// Level returns a level by ID.
func (d *Document) Level(_ context.Context, id domain.ElementID) (*domain.Level, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	l, ok := d.state.levels[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

// FloorType returns a floor type by ID.
func (d *Document) FloorType(_ context.Context, id domain.ElementID) (*domain.FloorType, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.state.types[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// Geometry returns the solid of a floor. Floors created in the open scope
// have no geometry yet and return an empty sequence.
func (d *Document) Geometry(_ context.Context, id domain.ElementID, opts domain.GeometryOptions) ([]domain.GeometryObject, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	st := d.state
	if objs, ok := st.overrides[id]; ok {
		return filterGeometry(objs, opts), nil
	}
	if _, ok := st.floors[id]; !ok {
		if _, ok := st.openings[id]; ok {
			return nil, nil
		}
		return nil, domain.ErrNotFound
	}
	if d.scope != nil && d.scope.created[id] {
		return nil, nil
	}

	solid, ok := st.solids[id]
	if !ok {
		return nil, nil
	}
	return []domain.GeometryObject{domain.SolidObject(solid)}, nil
}

func filterGeometry(objs []domain.GeometryObject, opts domain.GeometryOptions) []domain.GeometryObject {
	if opts.IncludeNonSolid {
		return objs
	}
	out := make([]domain.GeometryObject, 0, len(objs))
	for _, o := range objs {
		if o.Kind == domain.GeometrySolid {
			out = append(out, o)
		}
	}
	return out
}

// ==================== Creation ====================

// CreateFloor creates a floor with the first floor type and level.
func (d *Document) CreateFloor(ctx context.Context, boundary domain.CurveLoop, structural bool) (*domain.Floor, error) {
	d.mu.RLock()
	st := d.state
	var typeID, levelID domain.ElementID
	if len(st.typeOrder) > 0 {
		typeID = st.typeOrder[0]
	}
	if len(st.levelOrder) > 0 {
		levelID = st.levelOrder[0]
	}
	d.mu.RUnlock()

	if typeID == "" {
		return nil, fmt.Errorf("default floor type: %w", domain.ErrNotFound)
	}
	if levelID == "" {
		return nil, fmt.Errorf("default level: %w", domain.ErrNotFound)
	}
	return d.createFloor(ctx, boundary, typeID, levelID, structural, false)
}

// CreateTypedFloor creates a floor with an explicit floor type and level.
func (d *Document) CreateTypedFloor(
	ctx context.Context,
	boundary domain.CurveLoop,
	typeID, levelID domain.ElementID,
	structural bool,
) (*domain.Floor, error) {
	return d.createFloor(ctx, boundary, typeID, levelID, structural, false)
}

// CreateTemporaryFloor creates a typed floor flagged as scaffolding.
func (d *Document) CreateTemporaryFloor(
	ctx context.Context,
	boundary domain.CurveLoop,
	typeID, levelID domain.ElementID,
) (*domain.Floor, error) {
	return d.createFloor(ctx, boundary, typeID, levelID, false, true)
}

func (d *Document) createFloor(
	_ context.Context,
	boundary domain.CurveLoop,
	typeID, levelID domain.ElementID,
	structural, temporary bool,
) (*domain.Floor, error) {
	if err := boundary.Validate(); err != nil {
		return nil, fmt.Errorf("floor boundary: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope == nil {
		return nil, domain.ErrNoOpenScope
	}
	st := d.state
	level, ok := st.levels[levelID]
	if !ok {
		return nil, fmt.Errorf("level %s: %w", levelID, domain.ErrNotFound)
	}
	if _, ok := st.types[typeID]; !ok {
		return nil, fmt.Errorf("floor type %s: %w", typeID, domain.ErrNotFound)
	}

	floor := domain.Floor{
		ID:         d.newID(),
		TypeID:     typeID,
		LevelID:    levelID,
		Structural: structural,
		Boundary:   append(domain.CurveLoop{}, boundary...),
		Offset:     boundary[0].Start().Z - level.Elevation,
		Temporary:  temporary,
	}
	floor.Name = fmt.Sprintf("Floor %s", floor.ID)
	if temporary {
		floor.Name = fmt.Sprintf("Temporary floor %s", floor.ID)
	}

	st.putFloor(floor)
	d.scope.created[floor.ID] = true
	d.scope.dirty[floor.ID] = true
	d.scope.touched[floor.ID] = true

	out := floor
	return &out, nil
}

// CreateOpening cuts an opening into a floor. The floor's geometry is
// rebuilt when the scope commits.
func (d *Document) CreateOpening(
	_ context.Context,
	floorID domain.ElementID,
	loop domain.CurveLoop,
	cut bool,
) (*domain.Opening, error) {
	if err := loop.Validate(); err != nil {
		return nil, fmt.Errorf("opening loop: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope == nil {
		return nil, domain.ErrNoOpenScope
	}
	if _, ok := d.state.floors[floorID]; !ok {
		return nil, fmt.Errorf("host floor %s: %w", floorID, domain.ErrNotFound)
	}

	o := domain.Opening{
		ID:     d.newID(),
		HostID: floorID,
		Loop:   append(domain.CurveLoop{}, loop...),
		Cut:    cut,
	}
	d.state.putOpening(o)
	d.scope.touched[o.ID] = true
	d.scope.dirty[floorID] = true

	out := o
	return &out, nil
}

// BooleanDifference subtracts b from a in place.
func (d *Document) BooleanDifference(_ context.Context, a, b *domain.Solid) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := kernel.Subtract(a, b); err != nil {
		return err
	}

	// Persist the result with whichever floor owns the solid.
	if d.scope != nil {
		for id, s := range d.state.solids {
			if s == a {
				d.scope.touched[id] = true
			}
		}
	}
	return nil
}

// ==================== Editing ====================

// Move translates a floor together with its openings and solid.
func (d *Document) Move(_ context.Context, id domain.ElementID, offset domain.XYZ) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope == nil {
		return domain.ErrNoOpenScope
	}
	st := d.state
	f, ok := st.floors[id]
	if !ok {
		return fmt.Errorf("floor %s: %w", id, domain.ErrNotFound)
	}

	f.Boundary = f.Boundary.Translate(offset)
	f.Offset += offset.Z
	st.floors[id] = f
	d.scope.touched[id] = true

	for _, o := range st.openingsOf(id) {
		o.Loop = o.Loop.Translate(offset)
		st.openings[o.ID] = o
		d.scope.touched[o.ID] = true
	}

	if s, ok := st.solids[id]; ok {
		kernel.Translate(s, offset)
	}
	return nil
}

// Delete removes a floor with its openings, or a single opening.
func (d *Document) Delete(_ context.Context, id domain.ElementID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope == nil {
		return domain.ErrNoOpenScope
	}
	st := d.state

	if _, ok := st.floors[id]; ok {
		for _, o := range st.openingsOf(id) {
			st.removeOpening(o.ID)
		}
		st.removeFloor(id)
		d.scope.removed[id] = domain.CategoryFloor
		delete(d.scope.dirty, id)
		delete(d.scope.touched, id)
		return nil
	}

	if o, ok := st.openings[id]; ok {
		st.removeOpening(id)
		d.scope.removed[id] = domain.CategoryOpening
		delete(d.scope.touched, id)
		if _, ok := st.floors[o.HostID]; ok {
			d.scope.dirty[o.HostID] = true
			d.scope.touched[o.HostID] = true
		}
		return nil
	}

	return fmt.Errorf("element %s: %w", id, domain.ErrNotFound)
}

// ==================== Transactions ====================

// BeginScope opens a named modification scope.
func (d *Document) BeginScope(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope != nil {
		return fmt.Errorf("%w: %q", domain.ErrScopeAlreadyOpen, d.scope.name)
	}
	d.scope = &scope{
		name:     name,
		snapshot: d.state.clone(),
		created:  make(map[domain.ElementID]bool),
		dirty:    make(map[domain.ElementID]bool),
		touched:  make(map[domain.ElementID]bool),
		removed:  make(map[domain.ElementID]domain.Category),
	}
	return nil
}

// CommitScope materialises geometry of new and changed floors and persists
// the scope's changes. When persisting fails the scope's changes are
// dropped from memory and CommitFailed is returned.
func (d *Document) CommitScope(ctx context.Context) (domain.CommitStatus, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope == nil {
		return domain.CommitFailed, domain.ErrNoOpenScope
	}
	sc := d.scope

	for _, id := range d.state.floorOrder {
		if !sc.dirty[id] {
			continue
		}
		if err := d.state.materialise(id); err != nil {
			d.state = sc.snapshot
			d.scope = nil
			return domain.CommitRolledBack, fmt.Errorf("materialise floor %s: %w", id, err)
		}
	}

	d.scope = nil

	if d.store != nil {
		if err := d.persist(ctx, sc); err != nil {
			// Writes that reached the store before the failure stay there;
			// the loaded document falls back to its pre-scope state.
			d.state = sc.snapshot
			return domain.CommitFailed, fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
		}
	}
	return domain.CommitCommitted, nil
}

// RollbackScope discards every change made in the open scope.
func (d *Document) RollbackScope(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scope == nil {
		return domain.ErrNoOpenScope
	}
	d.state = d.scope.snapshot
	d.scope = nil
	return nil
}

// persist writes a committed scope to the store (caller must hold lock).
func (d *Document) persist(ctx context.Context, sc *scope) error {
	for id, cat := range sc.removed {
		var err error
		switch cat {
		case domain.CategoryFloor:
			err = d.store.DeleteFloor(ctx, id)
		case domain.CategoryOpening:
			err = d.store.DeleteOpening(ctx, id)
		}
		if err != nil {
			return fmt.Errorf("delete %s %s: %w", cat, id, err)
		}
	}

	for _, id := range d.state.floorOrder {
		if sc.touched[id] {
			if err := d.persistFloor(ctx, id); err != nil {
				return err
			}
		}
	}
	for _, id := range d.state.openOrder {
		if sc.touched[id] {
			if err := d.store.SaveOpening(ctx, d.state.openings[id]); err != nil {
				return fmt.Errorf("save opening %s: %w", id, err)
			}
		}
	}
	return nil
}

func (d *Document) persistFloor(ctx context.Context, id domain.ElementID) error {
	if err := d.store.SaveFloor(ctx, d.state.floors[id]); err != nil {
		return fmt.Errorf("save floor %s: %w", id, err)
	}
	if s, ok := d.state.solids[id]; ok {
		if err := d.store.SaveSolid(ctx, id, s); err != nil {
			return fmt.Errorf("save solid %s: %w", id, err)
		}
	}
	return nil
}
