package schedule

import (
	"fmt"

	"go.uber.org/zap"
)

// Editor applies availability edits to a week while keeping every day's slot
// set consistent with its derived range list. It carries the session's view
// filter and, per day, the last selection wiped by a bulk toggle so that
// clearing a day and toggling it again restores exactly what was there.
//
// One editor serves one editing session; it is not safe for concurrent use.
// Every operation either applies fully or returns an error with the week
// untouched.
type Editor struct {
	week    *Week
	filter  Filter
	cleared map[Day]SlotSet
	logger  *zap.Logger
}

// NewEditor wraps a week for editing with the unfiltered full-day view.
func NewEditor(week *Week, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		week:    week,
		filter:  FullDay(),
		cleared: make(map[Day]SlotSet),
		logger:  logger,
	}
}

// Week returns the aggregate under edit.
func (e *Editor) Week() *Week { return e.week }

// SetFilter changes the session's view filter.
func (e *Editor) SetFilter(f Filter) { e.filter = f }

// ActiveFilter returns the session's current view filter.
func (e *Editor) ActiveFilter() Filter { return e.filter }

// parseRange validates raw user bounds into a reconstructible range.
func (e *Editor) parseRange(start, end string) (Range, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, err
	}
	en, err := ParseClock(end)
	if err != nil {
		return Range{}, err
	}
	if s >= en {
		return Range{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, start, end)
	}
	r, err := FitRange(Range{Start: s, End: en})
	if err != nil {
		// A repair failure here is a codec defect, not bad user input.
		e.logger.Error("availability range failed round-trip repair",
			zap.String("start", start), zap.String("end", end), zap.Error(err))
		return Range{}, err
	}
	return r, nil
}

// AddRange parses the bounds and unions the covered ticks into the day.
// Existing slots are never removed; overlapping input merges through the
// set union.
func (e *Editor) AddRange(day Day, start, end string) error {
	slots, err := e.week.day(day)
	if err != nil {
		return err
	}
	r, err := e.parseRange(start, end)
	if err != nil {
		return err
	}
	for t := range RangesToSlots([]Range{r}) {
		slots.Add(t)
	}
	return nil
}

// EditRange replaces one of the day's current ranges with new bounds. The
// old range must still be one of the ranges the day currently decodes to;
// otherwise the edit is refused as stale and nothing changes. The new bounds
// are validated before the old ticks are removed, so a rejected edit never
// leaves the day half-modified.
func (e *Editor) EditRange(day Day, old Range, start, end string) error {
	slots, err := e.week.day(day)
	if err != nil {
		return err
	}
	r, err := e.parseRange(start, end)
	if err != nil {
		return err
	}
	if !currentRange(slots, old) {
		return fmt.Errorf("%w: %s", ErrStaleRange, old)
	}
	for t := range RangesToSlots([]Range{old}) {
		slots.Remove(t)
	}
	for t := range RangesToSlots([]Range{r}) {
		slots.Add(t)
	}
	return nil
}

// DeleteRange removes exactly the ticks of r from the day. Deleting a range
// that is already absent is a no-op.
func (e *Editor) DeleteRange(day Day, r Range) error {
	slots, err := e.week.day(day)
	if err != nil {
		return err
	}
	for t := range RangesToSlots([]Range{r}) {
		slots.Remove(t)
	}
	return nil
}

// ToggleSlot flips a single tick's membership. In hourly display mode the
// paired (hour, :30) ticks flip as one unit: both removed when both are
// present, both added otherwise. That realizes hourly granularity on top of
// the half-hour storage model without a second representation.
func (e *Editor) ToggleSlot(day Day, t Tick) error {
	slots, err := e.week.day(day)
	if err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("%w: tick %d out of day", ErrInvalidRange, t)
	}
	if e.filter.Mode == ModeHourly {
		top := t - Tick(int(t)%2)
		pair := top + 1
		if slots.Has(top) && slots.Has(pair) {
			slots.Remove(top)
			slots.Remove(pair)
		} else {
			slots.Add(top)
			slots.Add(pair)
		}
		return nil
	}
	if slots.Has(t) {
		slots.Remove(t)
	} else {
		slots.Add(t)
	}
	return nil
}

// ToggleDay bulk-toggles the day within the active filter's window. Any
// selection inside the window is cleared and remembered; toggling again with
// nothing selected restores that remembered selection instead of selecting
// the whole window. Only with no selection and nothing to restore does the
// full window get selected. Ticks outside the window are never touched, so a
// day keeps hidden availability across a filtered clear.
func (e *Editor) ToggleDay(day Day) error {
	slots, err := e.week.day(day)
	if err != nil {
		return err
	}
	scope := e.filter.ToggleTicks()

	selected := slots.Intersect(scope)
	if selected.Len() > 0 {
		e.cleared[day] = selected
		for t := range selected {
			slots.Remove(t)
		}
		return nil
	}

	if prev, ok := e.cleared[day]; ok {
		restore := prev.Intersect(scope)
		if restore.Len() > 0 {
			for t := range restore {
				slots.Add(t)
			}
			return nil
		}
	}

	for t := range scope {
		slots.Add(t)
	}
	return nil
}

// LastCleared returns the selection remembered from the day's most recent
// bulk clear, or nil if none.
func (e *Editor) LastCleared(day Day) SlotSet {
	prev, ok := e.cleared[day]
	if !ok {
		return nil
	}
	return prev.Clone()
}

// SeedCleared primes the remembered selection for a day, letting a caller
// carry the clear/restore affordance across editor instances within one
// editing session.
func (e *Editor) SeedCleared(day Day, slots SlotSet) {
	if slots.Len() == 0 {
		return
	}
	e.cleared[day] = slots.Clone()
}

// currentRange reports whether r is one of the ranges the slot set decodes
// to right now.
func currentRange(slots SlotSet, r Range) bool {
	for _, cur := range SlotsToRanges(slots) {
		if cur == r {
			return true
		}
	}
	return false
}
