package schedule

import (
	"errors"
	"testing"
)

func rangesEqual(a, b []Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Regression for the historical off-by-30-minutes defect: 13:00-16:00 must
// expand to exactly six slots and collapse back to exactly 13:00-16:00.
func TestCodec_BoundaryExample(t *testing.T) {
	r := Range{Start: mustTick(t, "13:00"), End: mustTick(t, "16:00")}

	slots := RangesToSlots([]Range{r})
	want := []string{"13:00", "13:30", "14:00", "14:30", "15:00", "15:30"}
	if slots.Len() != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), slots.Len())
	}
	for _, clock := range want {
		if !slots.Has(mustTick(t, clock)) {
			t.Errorf("missing slot %s", clock)
		}
	}

	back := SlotsToRanges(slots)
	if !rangesEqual(back, []Range{r}) {
		t.Fatalf("expected [13:00-16:00], got %v", back)
	}
}

func TestSlotsToRanges_GapDetection(t *testing.T) {
	// 09:00, 09:30 and 11:00: a gap at 10:00/10:30 splits two ranges.
	slots := NewSlotSet(mustTick(t, "09:00"), mustTick(t, "09:30"), mustTick(t, "11:00"))

	got := SlotsToRanges(slots)
	want := []Range{
		{Start: mustTick(t, "09:00"), End: mustTick(t, "10:00")},
		{Start: mustTick(t, "11:00"), End: mustTick(t, "11:30")},
	}
	if !rangesEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlotsToRanges_Empty(t *testing.T) {
	got := SlotsToRanges(NewSlotSet())
	if len(got) != 0 {
		t.Fatalf("expected empty range list, got %v", got)
	}
}

func TestRangesToSlots_OverlapUnion(t *testing.T) {
	ranges := []Range{
		{Start: mustTick(t, "09:00"), End: mustTick(t, "11:00")},
		{Start: mustTick(t, "10:00"), End: mustTick(t, "13:00")},
	}
	slots := RangesToSlots(ranges)
	if slots.Len() != 8 {
		t.Fatalf("expected 8 slots from the union, got %d", slots.Len())
	}
	got := SlotsToRanges(slots)
	want := []Range{{Start: mustTick(t, "09:00"), End: mustTick(t, "13:00")}}
	if !rangesEqual(got, want) {
		t.Fatalf("expected single merged range 09:00-13:00, got %v", got)
	}
}

func TestRoundTrip_RangesToSlotsToRanges(t *testing.T) {
	cases := [][]Range{
		{},
		{{Start: 0, End: 1}},
		{{Start: 0, End: TicksPerDay}}, // whole day
		{{Start: 18, End: 22}, {Start: 30, End: 31}, {Start: 46, End: 48}},
		{{Start: 2, End: 4}, {Start: 6, End: 8}, {Start: 10, End: 12}},
	}
	for _, ranges := range cases {
		got := SlotsToRanges(RangesToSlots(ranges))
		if !rangesEqual(got, ranges) {
			t.Errorf("round trip changed %v into %v", ranges, got)
		}
	}
}

func TestRoundTrip_SlotsToRangesToSlots(t *testing.T) {
	alternating := NewSlotSet()
	for tick := Tick(0); tick < TicksPerDay; tick += 2 {
		alternating.Add(tick)
	}
	full := NewSlotSet()
	for tick := Tick(0); tick < TicksPerDay; tick++ {
		full.Add(tick)
	}

	cases := []SlotSet{
		NewSlotSet(),
		NewSlotSet(0),
		NewSlotSet(47),
		NewSlotSet(18, 19, 20, 26, 30, 31),
		alternating,
		full,
	}
	for _, slots := range cases {
		got := RangesToSlots(SlotsToRanges(slots))
		if !got.Equal(slots) {
			t.Errorf("round trip changed slot set %v into %v", slots.Ticks(), got.Ticks())
		}
	}
}

func TestFitRange(t *testing.T) {
	// A well-formed range survives the check unchanged.
	r := Range{Start: mustTick(t, "13:00"), End: mustTick(t, "16:00")}
	fitted, err := FitRange(r)
	if err != nil {
		t.Fatalf("FitRange failed: %v", err)
	}
	if fitted != r {
		t.Fatalf("FitRange changed a valid range: %v -> %v", r, fitted)
	}

	// Degenerate and inverted bounds are rejected before any search.
	for _, bad := range []Range{{Start: 10, End: 10}, {Start: 12, End: 10}, {Start: -1, End: 4}, {Start: 10, End: 50}} {
		if _, err := FitRange(bad); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("FitRange(%v): expected ErrInvalidRange, got %v", bad, err)
		}
	}
}
