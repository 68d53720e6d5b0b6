package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/utils"
)

func (s *DefaultScheduleService) GetAvailability(ctx context.Context, tutorID string) ([]models.AvailabilityRecord, error) {
	records, err := s.Repo.GetByTutorID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	// Normalize through the week aggregate so callers always see canonical,
	// merged ranges even if stored records overlap.
	week, err := WeekFromRecords(records)
	if err != nil {
		return nil, err
	}
	return week.Records(), nil
}

func (s *DefaultScheduleService) ReplaceAvailability(ctx context.Context, tutorID string, records []models.AvailabilityRecord) ([]models.AvailabilityRecord, error) {
	week, err := WeekFromRecords(records)
	if err != nil {
		return nil, err
	}
	return s.flush(ctx, tutorID, week)
}

func (s *DefaultScheduleService) AddRange(ctx context.Context, tutorID string, req models.AddRangeRequest) ([]models.AvailabilityRecord, error) {
	day, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, tutorID, func(e *Editor) error {
		return e.AddRange(day, req.StartTime, req.EndTime)
	})
}

func (s *DefaultScheduleService) EditRange(ctx context.Context, tutorID string, req models.EditRangeRequest) ([]models.AvailabilityRecord, error) {
	day, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	old, err := parseBounds(req.OldStartTime, req.OldEndTime)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, tutorID, func(e *Editor) error {
		return e.EditRange(day, old, req.NewStartTime, req.NewEndTime)
	})
}

func (s *DefaultScheduleService) DeleteRange(ctx context.Context, tutorID string, req models.DeleteRangeRequest) ([]models.AvailabilityRecord, error) {
	day, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	r, err := parseBounds(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, tutorID, func(e *Editor) error {
		return e.DeleteRange(day, r)
	})
}

func (s *DefaultScheduleService) ToggleSlot(ctx context.Context, tutorID string, req models.ToggleSlotRequest) ([]models.AvailabilityRecord, error) {
	day, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	tick, err := ParseClock(req.Time)
	if err != nil {
		return nil, err
	}
	if !tick.Valid() {
		return nil, fmt.Errorf("%w: %q is not a slot start", ErrInvalidRange, req.Time)
	}
	return s.edit(ctx, tutorID, func(e *Editor) error {
		f := e.ActiveFilter()
		f.Mode = ParseDisplayMode(req.Mode)
		e.SetFilter(f)
		return e.ToggleSlot(day, tick)
	})
}

func (s *DefaultScheduleService) ToggleDay(ctx context.Context, tutorID string, req models.ToggleDayRequest) ([]models.AvailabilityRecord, error) {
	day, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	filter := FullDay()
	if req.StartHour != nil {
		filter.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		filter.EndHour = *req.EndHour
	}
	filter.Mode = ParseDisplayMode(req.Mode)
	if filter.StartHour < 0 || filter.EndHour > 24 || filter.StartHour >= filter.EndHour {
		return nil, fmt.Errorf("%w: hours %d-%d", ErrInvalidRange, filter.StartHour, filter.EndHour)
	}

	return s.edit(ctx, tutorID, func(e *Editor) error {
		e.SetFilter(filter)
		if prev := s.lastCleared(tutorID, day); prev != nil {
			e.SeedCleared(day, prev)
		}
		if err := e.ToggleDay(day); err != nil {
			return err
		}
		s.rememberCleared(tutorID, day, e.LastCleared(day))
		return nil
	})
}

// edit runs one editor operation against the tutor's loaded week and, on
// success, flushes the whole week back. Failed operations never reach the
// store.
func (s *DefaultScheduleService) edit(ctx context.Context, tutorID string, op func(*Editor) error) ([]models.AvailabilityRecord, error) {
	records, err := s.Repo.GetByTutorID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	week, err := WeekFromRecords(records)
	if err != nil {
		return nil, err
	}

	editor := NewEditor(week, utils.GetLogger())
	if err := op(editor); err != nil {
		return nil, err
	}

	return s.flush(ctx, tutorID, week)
}

func (s *DefaultScheduleService) flush(ctx context.Context, tutorID string, week *Week) ([]models.AvailabilityRecord, error) {
	records := week.Records()
	if err := s.Repo.Replace(ctx, tutorID, records); err != nil {
		utils.GetLogger().Error("failed to save availability",
			zap.String("tutorID", tutorID), zap.Error(err))
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	return records, nil
}

func (s *DefaultScheduleService) lastCleared(tutorID string, day Day) SlotSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.cleared[tutorID+"|"+string(day)]
	if !ok {
		return nil
	}
	return prev.Clone()
}

func (s *DefaultScheduleService) rememberCleared(tutorID string, day Day, slots SlotSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slots == nil || slots.Len() == 0 {
		return
	}
	s.cleared[tutorID+"|"+string(day)] = slots
}

func parseBounds(start, end string) (Range, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Range{}, err
	}
	if s >= e {
		return Range{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, start, end)
	}
	return Range{Start: s, End: e}, nil
}
