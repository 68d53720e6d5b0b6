package schedule

import "errors"

// Every failure in this package is a deterministic rejection of malformed
// input; none is transient or worth retrying. Operations that return one of
// these leave the underlying slot sets untouched.
var (
	// ErrInvalidTimeFormat reports a time string that is not zero-padded
	// 24-hour "HH:MM" (an optional ":SS" suffix is tolerated).
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidRange reports bounds where start is not strictly before end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrStaleRange reports an edit against a range the day no longer holds.
	ErrStaleRange = errors.New("stale range")

	// ErrUnknownDay reports a day name outside the trading-day enumeration.
	ErrUnknownDay = errors.New("unknown day")

	// ErrRoundTrip reports a range that cannot be made to survive the
	// slots round-trip. This is a consistency defect, not a user error;
	// callers log it instead of writing the offending range.
	ErrRoundTrip = errors.New("range round-trip check failed")
)
