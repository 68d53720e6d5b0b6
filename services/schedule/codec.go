package schedule

import "fmt"

// Range is a derived, contiguous, half-open interval of ticks [Start, End).
// Ranges exist only as the canonical serialization of a maximal run of
// consecutive ticks in a SlotSet; they are never stored directly.
type Range struct {
	Start Tick `json:"startTick"`
	End   Tick `json:"endTick"`
}

// Valid reports whether the bounds describe a non-empty in-day interval.
func (r Range) Valid() bool {
	return r.Start >= 0 && r.Start < r.End && r.End <= EndOfDay
}

func (r Range) String() string {
	return r.Start.Clock() + "-" + r.End.Clock()
}

// RangesToSlots expands ranges into the set of ticks they cover.
// Overlapping and duplicate input ranges union transparently; ticks outside
// the day are skipped. This direction never fails.
func RangesToSlots(ranges []Range) SlotSet {
	slots := make(SlotSet)
	for _, r := range ranges {
		for t := r.Start; t < r.End && t < EndOfDay; t++ {
			if t >= 0 {
				slots.Add(t)
			}
		}
	}
	return slots
}

// SlotsToRanges collapses a slot set into the unique minimal list of maximal,
// pairwise disjoint, non-touching ranges, ordered by start tick. A single
// ascending scan groups consecutive ticks into runs; each run closes as
// [first, last+1). Consecutive output ranges always have at least a one-tick
// gap between them, by maximality of the runs.
func SlotsToRanges(slots SlotSet) []Range {
	ticks := slots.Ticks()
	ranges := []Range{}
	for i := 0; i < len(ticks); {
		j := i
		for j+1 < len(ticks) && ticks[j+1] == ticks[j]+1 {
			j++
		}
		ranges = append(ranges, Range{Start: ticks[i], End: ticks[j] + 1})
		i = j + 1
	}
	return ranges
}

// FitRange verifies that r survives a slots round-trip unchanged and, when it
// does not, walks the end bound backward to the widest sub-range that does.
// User-entered bounds go through this before they are ever unioned into a
// day, so stored state can only ever hold reconstructible ranges. A range
// with no repairable sub-range reports ErrRoundTrip.
func FitRange(r Range) (Range, error) {
	if !r.Valid() {
		return Range{}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	for end := r.End; end > r.Start; end-- {
		cand := Range{Start: r.Start, End: end}
		got := SlotsToRanges(RangesToSlots([]Range{cand}))
		if len(got) == 1 && got[0] == cand {
			return cand, nil
		}
	}
	return Range{}, fmt.Errorf("%w: %s", ErrRoundTrip, r)
}
