package schedule

// DisplayMode selects the granularity the availability grid is shown and
// toggled at.
type DisplayMode int

const (
	// ModeHalfHour shows and toggles individual 30-minute slots.
	ModeHalfHour DisplayMode = iota
	// ModeHourly shows one unit per hour; toggling that unit flips both
	// half-hour ticks of the hour together.
	ModeHourly
)

// ParseDisplayMode maps the wire value to a mode; anything other than
// "hourly" means half-hour.
func ParseDisplayMode(s string) DisplayMode {
	if s == "hourly" {
		return ModeHourly
	}
	return ModeHalfHour
}

// Filter scopes which ticks are visible and bulk-editable at a given moment:
// an hour-of-day window plus the display mode. It is ephemeral, session-local
// state and never persisted; it restricts bulk operations without altering
// stored data outside its window.
type Filter struct {
	StartHour int
	EndHour   int // exclusive
	Mode      DisplayMode
}

// FullDay is the unfiltered view: every hour, half-hour granularity.
func FullDay() Filter {
	return Filter{StartHour: 0, EndHour: 24, Mode: ModeHalfHour}
}

func (f Filter) contains(t Tick) bool {
	return t.Hour() >= f.StartHour && t.Hour() < f.EndHour
}

// VisibleTicks returns the ticks the grid displays. In hourly mode only the
// top-of-hour tick of each pair appears; its :30 partner is still toggled
// with it. Displaying one unit while toggling two ticks is intended.
func (f Filter) VisibleTicks() SlotSet {
	out := make(SlotSet)
	for t := Tick(0); t < TicksPerDay; t++ {
		if !f.contains(t) {
			continue
		}
		if f.Mode == ModeHourly && int(t)%2 != 0 {
			continue
		}
		out.Add(t)
	}
	return out
}

// ToggleTicks returns the ticks a bulk toggle acts on: every tick inside the
// hour window, in either display mode.
func (f Filter) ToggleTicks() SlotSet {
	out := make(SlotSet)
	for t := Tick(0); t < TicksPerDay; t++ {
		if f.contains(t) {
			out.Add(t)
		}
	}
	return out
}
