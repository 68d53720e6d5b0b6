package schedule

import (
	"errors"
	"testing"

	"tutorhive/models"
)

func TestWeekFromRecords_GroupsAndMerges(t *testing.T) {
	records := []models.AvailabilityRecord{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Monday", StartTime: "10:00", EndTime: "11:00"}, // overlaps, unions away
		{Day: "Wednesday", StartTime: "14:00", EndTime: "15:00"},
	}

	week, err := WeekFromRecords(records)
	if err != nil {
		t.Fatalf("WeekFromRecords failed: %v", err)
	}

	monday := week.Ranges(Monday)
	if !rangesEqual(monday, []Range{{Start: mustTick(t, "09:00"), End: mustTick(t, "11:00")}}) {
		t.Fatalf("expected Monday 09:00-11:00, got %v", monday)
	}
	wednesday := week.Ranges(Wednesday)
	if !rangesEqual(wednesday, []Range{{Start: mustTick(t, "14:00"), End: mustTick(t, "15:00")}}) {
		t.Fatalf("expected Wednesday 14:00-15:00, got %v", wednesday)
	}
	if week.Slots(Tuesday).Len() != 0 {
		t.Fatal("days without records stay empty")
	}
}

func TestWeekFromRecords_TruncatesSeconds(t *testing.T) {
	week, err := WeekFromRecords([]models.AvailabilityRecord{
		{Day: "Friday", StartTime: "09:00:00", EndTime: "10:00:00"},
	})
	if err != nil {
		t.Fatalf("WeekFromRecords failed: %v", err)
	}
	got := week.Records()
	if len(got) != 1 || got[0].StartTime != "09:00" || got[0].EndTime != "10:00" {
		t.Fatalf("expected normalized 09:00-10:00, got %v", got)
	}
}

func TestWeekFromRecords_FailsFast(t *testing.T) {
	if _, err := WeekFromRecords([]models.AvailabilityRecord{
		{Day: "Sunday", StartTime: "09:00", EndTime: "10:00"},
	}); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}
	if _, err := WeekFromRecords([]models.AvailabilityRecord{
		{Day: "monday", StartTime: "09:00", EndTime: "10:00"}, // case-sensitive
	}); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay for lowercase name, got %v", err)
	}
	if _, err := WeekFromRecords([]models.AvailabilityRecord{
		{Day: "Monday", StartTime: "10:00", EndTime: "09:00"},
	}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := WeekFromRecords([]models.AvailabilityRecord{
		{Day: "Monday", StartTime: "late", EndTime: "09:00"},
	}); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestRecords_DayOrderAndImplicitClear(t *testing.T) {
	week := NewWeek()
	editor := NewEditor(week, nil)
	if err := editor.AddRange(Saturday, "08:00", "09:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	if err := editor.AddRange(Monday, "13:00", "16:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	if err := editor.AddRange(Monday, "18:00", "19:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	records := week.Records()
	want := []models.AvailabilityRecord{
		{Day: "Monday", StartTime: "13:00", EndTime: "16:00"},
		{Day: "Monday", StartTime: "18:00", EndTime: "19:00"},
		{Day: "Saturday", StartTime: "08:00", EndTime: "09:00"},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d: expected %v, got %v", i, want[i], records[i])
		}
	}
}

func TestRecords_UntilMidnight(t *testing.T) {
	week := NewWeek()
	editor := NewEditor(week, nil)
	if err := editor.AddRange(Friday, "23:00", "24:00"); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	records := week.Records()
	if len(records) != 1 || records[0].EndTime != "24:00" {
		t.Fatalf("expected a range ending at 24:00, got %v", records)
	}

	// And it loads back without drift.
	week2, err := WeekFromRecords(records)
	if err != nil {
		t.Fatalf("WeekFromRecords failed: %v", err)
	}
	if !week2.Slots(Friday).Equal(week.Slots(Friday)) {
		t.Fatal("midnight-bounded range must round-trip exactly")
	}
}

func TestRecords_RoundTrip(t *testing.T) {
	week := NewWeek()
	editor := NewEditor(week, nil)
	for _, add := range []struct{ day Day; start, end string }{
		{Monday, "09:00", "12:30"},
		{Monday, "14:00", "16:00"},
		{Tuesday, "07:30", "08:00"},
		{Saturday, "00:00", "24:00"},
	} {
		if err := editor.AddRange(add.day, add.start, add.end); err != nil {
			t.Fatalf("AddRange(%s %s-%s) failed: %v", add.day, add.start, add.end, err)
		}
	}

	reloaded, err := WeekFromRecords(week.Records())
	if err != nil {
		t.Fatalf("WeekFromRecords failed: %v", err)
	}
	for _, d := range TradingDays {
		if !reloaded.Slots(d).Equal(week.Slots(d)) {
			t.Errorf("%s changed across save/load: %v vs %v", d, week.Slots(d).Ticks(), reloaded.Slots(d).Ticks())
		}
	}
}
