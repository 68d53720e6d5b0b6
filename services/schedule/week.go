package schedule

import (
	"fmt"

	"tutorhive/models"
)

// Day names a trading day. Matching against stored records is case-sensitive.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

// TradingDays is the fixed ordered enumeration of days a tutor can declare
// availability on. Sundays are not traded.
var TradingDays = [...]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDay resolves a day name from a stored record or request. A name
// outside the enumeration is a data error and fails fast rather than being
// silently dropped.
func ParseDay(s string) (Day, error) {
	for _, d := range TradingDays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// Week is the weekly availability aggregate: one independent slot set per
// trading day. It is the unit loaded and persisted as a whole per tutor;
// a save replaces all prior stored ranges for every day.
type Week struct {
	days map[Day]SlotSet
}

// NewWeek returns a week with every day empty, the state a fresh tutor
// record starts from.
func NewWeek() *Week {
	days := make(map[Day]SlotSet, len(TradingDays))
	for _, d := range TradingDays {
		days[d] = make(SlotSet)
	}
	return &Week{days: days}
}

func (w *Week) day(d Day) (SlotSet, error) {
	slots, ok := w.days[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, d)
	}
	return slots, nil
}

// Slots returns a copy of the day's slot set. Mutation goes through an
// Editor so every change keeps the range representation reconstructible.
func (w *Week) Slots(d Day) SlotSet {
	slots, ok := w.days[d]
	if !ok {
		return NewSlotSet()
	}
	return slots.Clone()
}

// Ranges returns the day's availability as its canonical ordered range list.
func (w *Week) Ranges(d Day) []Range {
	slots, ok := w.days[d]
	if !ok {
		return []Range{}
	}
	return SlotsToRanges(slots)
}

// WeekFromRecords rebuilds a week from stored gateway records. Records are
// grouped by day, their time strings normalized (seconds truncated), and
// each start/end pair expanded into slots. Prior state is replaced
// wholesale; nothing is merged.
func WeekFromRecords(records []models.AvailabilityRecord) (*Week, error) {
	week := NewWeek()
	for _, rec := range records {
		day, err := ParseDay(rec.Day)
		if err != nil {
			return nil, err
		}
		start, err := ParseClock(rec.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(rec.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, fmt.Errorf("%w: %s %s-%s", ErrInvalidRange, rec.Day, rec.StartTime, rec.EndTime)
		}
		for t := range RangesToSlots([]Range{{Start: start, End: end}}) {
			week.days[day].Add(t)
		}
	}
	return week, nil
}

// Records flattens the week into gateway records: one per contiguous range,
// in trading-day order. Days with no slots contribute no records, so saving
// the result implicitly clears them.
func (w *Week) Records() []models.AvailabilityRecord {
	records := []models.AvailabilityRecord{}
	for _, d := range TradingDays {
		for _, r := range SlotsToRanges(w.days[d]) {
			records = append(records, models.AvailabilityRecord{
				Day:       string(d),
				StartTime: r.Start.Clock(),
				EndTime:   r.End.Clock(),
			})
		}
	}
	return records
}
