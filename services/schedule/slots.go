package schedule

import "sort"

// SlotSet is the stored per-day set of available ticks. Membership of tick t
// means "the 30 minutes starting at t are free". The set carries no ordering;
// the range representation is always derived from it, never stored.
type SlotSet map[Tick]struct{}

// NewSlotSet builds a set from the given ticks.
func NewSlotSet(ticks ...Tick) SlotSet {
	s := make(SlotSet, len(ticks))
	for _, t := range ticks {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership of t.
func (s SlotSet) Has(t Tick) bool {
	_, ok := s[t]
	return ok
}

// Add inserts t.
func (s SlotSet) Add(t Tick) { s[t] = struct{}{} }

// Remove deletes t; removing an absent tick is a no-op.
func (s SlotSet) Remove(t Tick) { delete(s, t) }

// Len returns the number of ticks in the set.
func (s SlotSet) Len() int { return len(s) }

// Ticks returns the members in ascending order.
func (s SlotSet) Ticks() []Tick {
	ticks := make([]Tick, 0, len(s))
	for t := range s {
		ticks = append(ticks, t)
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })
	return ticks
}

// Clone returns an independent copy.
func (s SlotSet) Clone() SlotSet {
	out := make(SlotSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same ticks.
func (s SlotSet) Equal(other SlotSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Intersect returns the ticks present in both sets.
func (s SlotSet) Intersect(other SlotSet) SlotSet {
	out := make(SlotSet)
	for t := range s {
		if other.Has(t) {
			out.Add(t)
		}
	}
	return out
}
