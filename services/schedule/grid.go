package schedule

import "fmt"

// Tick identifies a 30-minute boundary within a day. Tick t covers the
// half-open interval [t*30, t*30+30) minutes since midnight, so valid slot
// positions run from 0 (00:00) to 47 (23:30).
type Tick int

const (
	// MinutesPerTick is the fixed slot width.
	MinutesPerTick = 30
	// TicksPerDay is the number of slot positions in a 24-hour day.
	TicksPerDay = 24 * 60 / MinutesPerTick
	// EndOfDay is the exclusive upper bound used by ranges that run until
	// midnight. It is never a storable slot position itself.
	EndOfDay Tick = TicksPerDay
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ParseClock converts a wall-clock string to the tick starting at it.
// The input must be zero-padded 24-hour "HH:MM"; a seconds suffix is
// truncated without validation, matching what stored records may carry.
// "24:00" is accepted and maps to the exclusive end-of-day bound.
func ParseClock(s string) (Tick, error) {
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	if len(s) != 5 || s[2] != ':' ||
		!isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh == 24 && mm == 0 {
		return EndOfDay, nil
	}
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return Tick((hh*60 + mm) / MinutesPerTick), nil
}

// Clock renders the tick's start as "HH:MM". Total for every tick from 0
// through EndOfDay; EndOfDay renders as "24:00" so a range ending at
// midnight stays expressible.
func (t Tick) Clock() string {
	m := int(t) * MinutesPerTick
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Valid reports whether t is a storable slot position.
func (t Tick) Valid() bool { return t >= 0 && t < TicksPerDay }

// Hour returns the hour of day the tick falls in.
func (t Tick) Hour() int { return int(t) / 2 }

// Next returns the following tick, clamped at the end-of-day bound.
func (t Tick) Next() Tick {
	if t >= EndOfDay {
		return EndOfDay
	}
	return t + 1
}
