package schedule

import (
	"errors"
	"testing"
)

func mustTick(t *testing.T, clock string) Tick {
	t.Helper()
	tick, err := ParseClock(clock)
	if err != nil {
		t.Fatalf("ParseClock(%q) failed: %v", clock, err)
	}
	return tick
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want Tick
	}{
		{"00:00", 0},
		{"00:30", 1},
		{"09:00", 18},
		{"09:30", 19},
		{"13:00", 26},
		{"23:30", 47},
		{"24:00", EndOfDay},
		{"13:00:00", 26}, // seconds are truncated, not validated
		{"09:30:59", 19},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "9:00", "1300", "ab:cd", "13:60", "25:00", "24:30", "13-00", "13:0"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ParseClock(%q): expected ErrInvalidTimeFormat, got %v", in, err)
		}
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		tick Tick
		want string
	}{
		{0, "00:00"},
		{1, "00:30"},
		{19, "09:30"},
		{26, "13:00"},
		{47, "23:30"},
		{EndOfDay, "24:00"},
	}
	for _, c := range cases {
		if got := c.tick.Clock(); got != c.want {
			t.Errorf("Tick(%d).Clock() = %q, want %q", c.tick, got, c.want)
		}
	}
}

func TestTickHourAndNext(t *testing.T) {
	if h := Tick(19).Hour(); h != 9 {
		t.Errorf("Tick(19).Hour() = %d, want 9", h)
	}
	if n := Tick(5).Next(); n != 6 {
		t.Errorf("Tick(5).Next() = %d, want 6", n)
	}
	// Ranges ending at midnight are never extended further; Next clamps.
	if n := EndOfDay.Next(); n != EndOfDay {
		t.Errorf("EndOfDay.Next() = %d, want %d", n, EndOfDay)
	}
	if EndOfDay.Valid() {
		t.Error("EndOfDay must not be a storable slot position")
	}
	if !Tick(47).Valid() {
		t.Error("Tick(47) must be a storable slot position")
	}
}
