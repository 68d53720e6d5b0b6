package schedule

import (
	"errors"
	"testing"
)

func newTestEditor() *Editor {
	return NewEditor(NewWeek(), nil)
}

func TestAddRange_MergeOnOverlap(t *testing.T) {
	e := newTestEditor()

	if err := e.AddRange(Monday, "09:00", "11:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	if err := e.AddRange(Monday, "10:00", "13:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	got := e.Week().Ranges(Monday)
	want := []Range{{Start: mustTick(t, "09:00"), End: mustTick(t, "13:00")}}
	if !rangesEqual(got, want) {
		t.Fatalf("expected single merged range 09:00-13:00, got %v", got)
	}
}

func TestAddRange_RejectsBadInputWithoutMutation(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Monday, "09:00", "10:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	before := e.Week().Slots(Monday)

	if err := e.AddRange(Monday, "9am", "10:00"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
	if err := e.AddRange(Monday, "11:00", "11:00"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for empty range, got %v", err)
	}
	if err := e.AddRange(Monday, "12:00", "11:00"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for inverted range, got %v", err)
	}
	if err := e.AddRange("Funday", "09:00", "10:00"); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}

	if !e.Week().Slots(Monday).Equal(before) {
		t.Fatal("a rejected AddRange must leave the day untouched")
	}
}

func TestEditRange_ReplacesBounds(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Tuesday, "09:00", "11:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	old := Range{Start: mustTick(t, "09:00"), End: mustTick(t, "11:00")}
	if err := e.EditRange(Tuesday, old, "14:00", "16:30"); err != nil {
		t.Fatalf("EditRange failed: %v", err)
	}

	got := e.Week().Ranges(Tuesday)
	want := []Range{{Start: mustTick(t, "14:00"), End: mustTick(t, "16:30")}}
	if !rangesEqual(got, want) {
		t.Fatalf("expected [14:00-16:30], got %v", got)
	}
}

func TestEditRange_StaleTargetIsRefused(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Tuesday, "09:00", "11:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	before := e.Week().Slots(Tuesday)

	// 09:00-10:00 is inside the stored range but is not itself one of the
	// day's current ranges, so editing it must be refused.
	stale := Range{Start: mustTick(t, "09:00"), End: mustTick(t, "10:00")}
	err := e.EditRange(Tuesday, stale, "12:00", "13:00")
	if !errors.Is(err, ErrStaleRange) {
		t.Fatalf("expected ErrStaleRange, got %v", err)
	}
	if !e.Week().Slots(Tuesday).Equal(before) {
		t.Fatal("a stale edit must leave the day untouched")
	}
}

func TestEditRange_InvalidNewBoundsLeaveOldRange(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Wednesday, "09:00", "11:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	before := e.Week().Slots(Wednesday)

	old := Range{Start: mustTick(t, "09:00"), End: mustTick(t, "11:00")}
	if err := e.EditRange(Wednesday, old, "13:00", "12:00"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if !e.Week().Slots(Wednesday).Equal(before) {
		t.Fatal("a rejected edit must not remove the old range")
	}
}

func TestDeleteRange_Idempotent(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Friday, "09:00", "11:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	r := Range{Start: mustTick(t, "09:00"), End: mustTick(t, "11:00")}
	if err := e.DeleteRange(Friday, r); err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if e.Week().Slots(Friday).Len() != 0 {
		t.Fatal("expected empty day after delete")
	}
	// Deleting an absent range is a no-op, not an error.
	if err := e.DeleteRange(Friday, r); err != nil {
		t.Fatalf("second DeleteRange failed: %v", err)
	}
}

func TestToggleSlot_Idempotence(t *testing.T) {
	e := newTestEditor()
	tick := mustTick(t, "10:00")
	before := e.Week().Slots(Monday)

	if err := e.ToggleSlot(Monday, tick); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	if !e.Week().Slots(Monday).Has(tick) {
		t.Fatal("expected slot selected after first toggle")
	}
	if err := e.ToggleSlot(Monday, tick); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	if !e.Week().Slots(Monday).Equal(before) {
		t.Fatal("double toggle must restore the original slot set")
	}
}

func TestToggleSlot_HourlyPairing(t *testing.T) {
	e := newTestEditor()
	f := e.ActiveFilter()
	f.Mode = ModeHourly
	e.SetFilter(f)

	// Toggling the 10:00 unit selects both 10:00 and 10:30.
	if err := e.ToggleSlot(Saturday, mustTick(t, "10:00")); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	slots := e.Week().Slots(Saturday)
	if !slots.Has(mustTick(t, "10:00")) || !slots.Has(mustTick(t, "10:30")) {
		t.Fatalf("expected both 10:00 and 10:30 selected, got %v", slots.Ticks())
	}

	// Toggling again deselects both.
	if err := e.ToggleSlot(Saturday, mustTick(t, "10:00")); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	if e.Week().Slots(Saturday).Len() != 0 {
		t.Fatal("expected both paired slots deselected")
	}

	// With only the :30 half present, toggling the unit completes the pair.
	if err := e.ToggleSlot(Saturday, mustTick(t, "10:30")); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	f.Mode = ModeHalfHour
	e.SetFilter(f)
	if err := e.ToggleSlot(Saturday, mustTick(t, "10:00")); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	f.Mode = ModeHourly
	e.SetFilter(f)
	if err := e.ToggleSlot(Saturday, mustTick(t, "10:00")); err != nil {
		t.Fatalf("ToggleSlot failed: %v", err)
	}
	got := e.Week().Slots(Saturday)
	if !got.Has(mustTick(t, "10:00")) || !got.Has(mustTick(t, "10:30")) {
		t.Fatalf("expected the hourly toggle to complete the pair, got %v", got.Ticks())
	}
}

func TestToggleDay_FilteredClearThenRestore(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Monday, "09:00", "10:30"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	want := e.Week().Slots(Monday) // {09:00, 09:30, 10:00}

	e.SetFilter(Filter{StartHour: 9, EndHour: 11, Mode: ModeHalfHour})

	if err := e.ToggleDay(Monday); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	if e.Week().Slots(Monday).Len() != 0 {
		t.Fatal("expected the filtered selection cleared")
	}

	// A second toggle restores exactly the prior selection, not the whole
	// filter window.
	if err := e.ToggleDay(Monday); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	if !e.Week().Slots(Monday).Equal(want) {
		t.Fatalf("expected restored selection %v, got %v", want.Ticks(), e.Week().Slots(Monday).Ticks())
	}
}

func TestToggleDay_SelectsWindowWhenNothingToRestore(t *testing.T) {
	e := newTestEditor()
	e.SetFilter(Filter{StartHour: 9, EndHour: 11, Mode: ModeHalfHour})

	if err := e.ToggleDay(Thursday); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	slots := e.Week().Slots(Thursday)
	if slots.Len() != 4 {
		t.Fatalf("expected the 4 window ticks selected, got %v", slots.Ticks())
	}
	for _, clock := range []string{"09:00", "09:30", "10:00", "10:30"} {
		if !slots.Has(mustTick(t, clock)) {
			t.Errorf("missing %s", clock)
		}
	}
}

func TestToggleDay_NeverTouchesHiddenSlots(t *testing.T) {
	e := newTestEditor()
	if err := e.AddRange(Monday, "06:00", "07:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	if err := e.AddRange(Monday, "09:00", "10:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	e.SetFilter(Filter{StartHour: 9, EndHour: 11, Mode: ModeHalfHour})
	if err := e.ToggleDay(Monday); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}

	// The 06:00 availability is outside the window and survives the clear.
	slots := e.Week().Slots(Monday)
	if !slots.Has(mustTick(t, "06:00")) || !slots.Has(mustTick(t, "06:30")) {
		t.Fatalf("hidden slots must survive a filtered clear, got %v", slots.Ticks())
	}
	if slots.Has(mustTick(t, "09:00")) {
		t.Fatal("windowed slots must be cleared")
	}
}

func TestToggleDay_FullDayDegeneratesToSelectAll(t *testing.T) {
	e := newTestEditor()

	if err := e.ToggleDay(Saturday); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	if got := e.Week().Slots(Saturday).Len(); got != TicksPerDay {
		t.Fatalf("expected all %d ticks selected, got %d", TicksPerDay, got)
	}

	if err := e.ToggleDay(Saturday); err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	if got := e.Week().Slots(Saturday).Len(); got != 0 {
		t.Fatalf("expected whole day deselected, got %d ticks", got)
	}
}
