package memory

import (
	"fmt"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/kernel"
)

func newState() *state {
	return &state{
		levels:    make(map[domain.ElementID]domain.Level),
		types:     make(map[domain.ElementID]domain.FloorType),
		floors:    make(map[domain.ElementID]domain.Floor),
		openings:  make(map[domain.ElementID]domain.Opening),
		solids:    make(map[domain.ElementID]*domain.Solid),
		overrides: make(map[domain.ElementID][]domain.GeometryObject),
	}
}

func (s *state) putLevel(l domain.Level) {
	if _, ok := s.levels[l.ID]; !ok {
		s.levelOrder = append(s.levelOrder, l.ID)
	}
	s.levels[l.ID] = l
}

func (s *state) putType(t domain.FloorType) {
	if _, ok := s.types[t.ID]; !ok {
		s.typeOrder = append(s.typeOrder, t.ID)
	}
	s.types[t.ID] = t
}

func (s *state) putFloor(f domain.Floor) {
	if _, ok := s.floors[f.ID]; !ok {
		s.floorOrder = append(s.floorOrder, f.ID)
	}
	s.floors[f.ID] = f
}

func (s *state) putOpening(o domain.Opening) {
	if _, ok := s.openings[o.ID]; !ok {
		s.openOrder = append(s.openOrder, o.ID)
	}
	s.openings[o.ID] = o
}

func (s *state) openingsOf(floorID domain.ElementID) []domain.Opening {
	var result []domain.Opening
	for _, id := range s.openOrder {
		if o := s.openings[id]; o.HostID == floorID {
			result = append(result, o)
		}
	}
	return result
}

func (s *state) removeFloor(id domain.ElementID) {
	delete(s.floors, id)
	delete(s.solids, id)
	delete(s.overrides, id)
	s.floorOrder = without(s.floorOrder, id)
}

func (s *state) removeOpening(id domain.ElementID) {
	delete(s.openings, id)
	s.openOrder = without(s.openOrder, id)
}

func without(ids []domain.ElementID, id domain.ElementID) []domain.ElementID {
	out := make([]domain.ElementID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// materialise rebuilds the solid of a floor from its boundary, its floor
// type's thickness and its openings.
func (s *state) materialise(id domain.ElementID) error {
	f, ok := s.floors[id]
	if !ok {
		return domain.ErrNotFound
	}
	ft, ok := s.types[f.TypeID]
	if !ok {
		return fmt.Errorf("floor type %s: %w", f.TypeID, domain.ErrNotFound)
	}

	top := f.Boundary[0].Start().Z
	loops := []domain.CurveLoop{f.Boundary}
	for _, o := range s.openingsOf(id) {
		loops = append(loops, o.Loop)
	}

	solid, err := kernel.Extrude(loops, top-ft.Thickness, top)
	if err != nil {
		return err
	}
	s.solids[id] = solid
	return nil
}

// clone returns a deep copy for rollback snapshots.
func (s *state) clone() *state {
	out := newState()
	for _, id := range s.levelOrder {
		out.putLevel(s.levels[id])
	}
	for _, id := range s.typeOrder {
		out.putType(s.types[id])
	}
	for _, id := range s.floorOrder {
		f := s.floors[id]
		f.Boundary = append(domain.CurveLoop{}, f.Boundary...)
		out.putFloor(f)
	}
	for _, id := range s.openOrder {
		o := s.openings[id]
		o.Loop = append(domain.CurveLoop{}, o.Loop...)
		out.putOpening(o)
	}
	for id, solid := range s.solids {
		out.solids[id] = kernel.Clone(solid)
	}
	for id, objs := range s.overrides {
		out.overrides[id] = append([]domain.GeometryObject{}, objs...)
	}
	return out
}
