package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/kernel"
)

// Ensure ModelStore implements the interface.
var _ driven.ModelStore = (*ModelStore)(nil)

// ModelStore is an in-memory implementation of driven.ModelStore.
// Load returns elements in the order they were first saved.
type ModelStore struct {
	mu       sync.RWMutex
	levels   map[domain.ElementID]domain.Level
	types    map[domain.ElementID]domain.FloorType
	floors   map[domain.ElementID]domain.Floor
	openings map[domain.ElementID]domain.Opening
	solids   map[domain.ElementID]*domain.Solid
	order    []domain.ElementID
	known    map[domain.ElementID]bool
}

// NewModelStore creates a new in-memory model store.
func NewModelStore() *ModelStore {
	return &ModelStore{
		levels:   make(map[domain.ElementID]domain.Level),
		types:    make(map[domain.ElementID]domain.FloorType),
		floors:   make(map[domain.ElementID]domain.Floor),
		openings: make(map[domain.ElementID]domain.Opening),
		solids:   make(map[domain.ElementID]*domain.Solid),
		known:    make(map[domain.ElementID]bool),
	}
}

// Load returns a copy of every stored element.
func (s *ModelStore) Load(_ context.Context) (*driven.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	model := &driven.Model{Solids: make(map[domain.ElementID]*domain.Solid, len(s.solids))}
	for _, id := range s.order {
		if l, ok := s.levels[id]; ok {
			model.Levels = append(model.Levels, l)
		}
		if t, ok := s.types[id]; ok {
			model.FloorTypes = append(model.FloorTypes, t)
		}
		if f, ok := s.floors[id]; ok {
			model.Floors = append(model.Floors, f)
		}
		if o, ok := s.openings[id]; ok {
			model.Openings = append(model.Openings, o)
		}
	}
	for id, solid := range s.solids {
		model.Solids[id] = kernel.Clone(solid)
	}
	return model, nil
}

// SaveLevel stores or updates a level.
func (s *ModelStore) SaveLevel(_ context.Context, level domain.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track(level.ID)
	s.levels[level.ID] = level
	return nil
}

// SaveFloorType stores or updates a floor type.
func (s *ModelStore) SaveFloorType(_ context.Context, floorType domain.FloorType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track(floorType.ID)
	s.types[floorType.ID] = floorType
	return nil
}

// SaveFloor stores or updates a floor.
func (s *ModelStore) SaveFloor(_ context.Context, floor domain.Floor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track(floor.ID)
	floor.Boundary = append(domain.CurveLoop{}, floor.Boundary...)
	s.floors[floor.ID] = floor
	return nil
}

// SaveOpening stores or updates an opening.
func (s *ModelStore) SaveOpening(_ context.Context, opening domain.Opening) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track(opening.ID)
	opening.Loop = append(domain.CurveLoop{}, opening.Loop...)
	s.openings[opening.ID] = opening
	return nil
}

// SaveSolid stores a copy of a floor's solid.
func (s *ModelStore) SaveSolid(_ context.Context, floorID domain.ElementID, solid *domain.Solid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.floors[floorID]; !ok {
		return domain.ErrNotFound
	}
	s.solids[floorID] = kernel.Clone(solid)
	return nil
}

// DeleteFloor removes a floor, its openings and its solid.
func (s *ModelStore) DeleteFloor(_ context.Context, id domain.ElementID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for oid, o := range s.openings {
		if o.HostID == id {
			delete(s.openings, oid)
		}
	}
	delete(s.floors, id)
	delete(s.solids, id)
	return nil
}

// DeleteOpening removes an opening.
func (s *ModelStore) DeleteOpening(_ context.Context, id domain.ElementID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.openings, id)
	return nil
}

// track records first-save order (caller must hold lock).
func (s *ModelStore) track(id domain.ElementID) {
	if !s.known[id] {
		s.known[id] = true
		s.order = append(s.order, id)
	}
}
