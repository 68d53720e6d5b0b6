package schedule

import "testing"

func TestVisibleTicks_HourWindow(t *testing.T) {
	f := Filter{StartHour: 9, EndHour: 11, Mode: ModeHalfHour}

	visible := f.VisibleTicks()
	if visible.Len() != 4 {
		t.Fatalf("expected 4 visible ticks in [9,11), got %d", visible.Len())
	}
	for _, clock := range []string{"09:00", "09:30", "10:00", "10:30"} {
		if !visible.Has(mustTick(t, clock)) {
			t.Errorf("expected %s visible", clock)
		}
	}
	if visible.Has(mustTick(t, "11:00")) {
		t.Error("11:00 is outside the window")
	}
}

// In hourly mode the display shows one unit per hour while a toggle still
// acts on both half-hour ticks. The two views are intentionally different.
func TestHourlyMode_DisplayAndToggleViewsDiffer(t *testing.T) {
	f := Filter{StartHour: 9, EndHour: 11, Mode: ModeHourly}

	visible := f.VisibleTicks()
	if visible.Len() != 2 {
		t.Fatalf("expected 2 display units, got %d", visible.Len())
	}
	if !visible.Has(mustTick(t, "09:00")) || !visible.Has(mustTick(t, "10:00")) {
		t.Fatalf("expected top-of-hour ticks only, got %v", visible.Ticks())
	}

	toggle := f.ToggleTicks()
	if toggle.Len() != 4 {
		t.Fatalf("expected 4 toggleable ticks, got %d", toggle.Len())
	}
	if !toggle.Has(mustTick(t, "09:30")) || !toggle.Has(mustTick(t, "10:30")) {
		t.Fatalf("expected the :30 partners toggleable, got %v", toggle.Ticks())
	}
}

func TestFullDay(t *testing.T) {
	f := FullDay()
	if got := f.VisibleTicks().Len(); got != TicksPerDay {
		t.Fatalf("expected %d visible ticks in the full-day view, got %d", TicksPerDay, got)
	}

	f.Mode = ModeHourly
	if got := f.VisibleTicks().Len(); got != 24 {
		t.Fatalf("expected 24 hourly display units, got %d", got)
	}
	if got := f.ToggleTicks().Len(); got != TicksPerDay {
		t.Fatalf("hourly mode must still toggle all %d ticks, got %d", TicksPerDay, got)
	}
}

func TestParseDisplayMode(t *testing.T) {
	if ParseDisplayMode("hourly") != ModeHourly {
		t.Error("expected hourly")
	}
	if ParseDisplayMode("") != ModeHalfHour {
		t.Error("expected half-hour default")
	}
	if ParseDisplayMode("half-hour") != ModeHalfHour {
		t.Error("expected half-hour")
	}
}
