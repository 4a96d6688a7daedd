package hazard

import "github.com/wildbook/shorai/pos"

// HazardSet tracks a collection of missiles under stable int32
// identifiers, iterated in insertion order. It is the vector-plus-
// index-map shape used throughout this module for anything that needs
// both "iterate in a fixed order" and "look up by id" without
// renumbering on insert.
type HazardSet struct {
	order []int32
	index map[int32]int
	items []Missile
}

// NewHazardSet returns an empty hazard set.
func NewHazardSet() *HazardSet {
	return &HazardSet{index: make(map[int32]int)}
}

// Insert adds or replaces the missile under id. A replace keeps id's
// position in iteration order.
func (s *HazardSet) Insert(id int32, m Missile) {
	if i, ok := s.index[id]; ok {
		s.items[i] = m
		return
	}

	s.index[id] = len(s.items)
	s.items = append(s.items, m)
	s.order = append(s.order, id)
}

// Get returns the missile stored under id.
func (s *HazardSet) Get(id int32) (Missile, bool) {
	i, ok := s.index[id]
	if !ok {
		return Missile{}, false
	}
	return s.items[i], true
}

// Len returns the number of missiles tracked.
func (s *HazardSet) Len() int { return len(s.items) }

// Overlaps returns the id of the first missile (in insertion order)
// whose swept path overlaps p, per Missile.Overlaps.
func (s *HazardSet) Overlaps(smearFrom float64, p pos.Position, pawnSize float64) (int32, bool) {
	for _, id := range s.order {
		if s.items[s.index[id]].Overlaps(smearFrom, p, pawnSize) {
			return id, true
		}
	}
	return 0, false
}

// CollidesVelocity returns the id of the first missile that collides
// with a pawn at p moving at velocity before endTime.
func (s *HazardSet) CollidesVelocity(p pos.Position, velocity pos.Vec2, endTime, pawnSize float64) (int32, bool) {
	for _, id := range s.order {
		if s.items[s.index[id]].Collides(p, velocity, p.T, endTime, pawnSize) {
			return id, true
		}
	}
	return 0, false
}

// CollidesTrajectory is the edge-validation entry point: it checks
// whether travelling in a straight line from begin to end at moveSpeed
// collides with any tracked missile while in transit, then whether any
// missile has already swept through end's exact arrival point. The
// latter check catches a missile that exists only briefly around the
// endpoint's arrival time.
func (s *HazardSet) CollidesTrajectory(begin, end pos.Position, moveSpeed, pawnSize float64) (int32, bool) {
	velocity := begin.Direction(end).Scale(moveSpeed)

	dist := end.Vec2().Sub(begin.Vec2()).Mag()
	moveTime := dist / moveSpeed
	moveEndTime := begin.T + moveTime

	if id, ok := s.CollidesVelocity(begin, velocity, moveEndTime, pawnSize); ok {
		return id, true
	}

	return s.Overlaps(moveEndTime, end, pawnSize)
}

// Entry pairs a missile with the id it was inserted under.
type Entry struct {
	ID      int32
	Missile Missile
}

// All returns every tracked missile in insertion order. The returned
// slice is a snapshot; mutating it does not affect s.
func (s *HazardSet) All() []Entry {
	out := make([]Entry, len(s.order))
	for i, id := range s.order {
		out[i] = Entry{ID: id, Missile: s.items[s.index[id]]}
	}
	return out
}

// Clone returns a deep copy whose future mutations do not affect s.
func (s *HazardSet) Clone() *HazardSet {
	clone := &HazardSet{
		order: append([]int32(nil), s.order...),
		items: append([]Missile(nil), s.items...),
		index: make(map[int32]int, len(s.index)),
	}
	for k, v := range s.index {
		clone.index[k] = v
	}
	return clone
}
