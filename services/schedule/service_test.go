package schedule

import (
	"context"
	"errors"
	"testing"

	"tutorhive/models"
)

// fakeAvailabilityRepo is an in-memory stand-in for the Mongo repository.
type fakeAvailabilityRepo struct {
	stored   map[string][]models.AvailabilityRecord
	replaces int
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{stored: make(map[string][]models.AvailabilityRecord)}
}

func (f *fakeAvailabilityRepo) GetByTutorID(_ context.Context, tutorID string) ([]models.AvailabilityRecord, error) {
	return f.stored[tutorID], nil
}

func (f *fakeAvailabilityRepo) Replace(_ context.Context, tutorID string, records []models.AvailabilityRecord) error {
	f.replaces++
	f.stored[tutorID] = records
	return nil
}

func TestScheduleService_AddRangePersistsMerged(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewDefaultScheduleService(repo)
	ctx := context.Background()

	if _, err := svc.AddRange(ctx, "tutor-1", models.AddRangeRequest{Day: "Monday", StartTime: "09:00", EndTime: "11:00"}); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	records, err := svc.AddRange(ctx, "tutor-1", models.AddRangeRequest{Day: "Monday", StartTime: "10:00", EndTime: "13:00"})
	if err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected one merged record, got %v", records)
	}
	if records[0].StartTime != "09:00" || records[0].EndTime != "13:00" {
		t.Fatalf("expected 09:00-13:00, got %v", records[0])
	}
	if len(repo.stored["tutor-1"]) != 1 {
		t.Fatalf("store must hold the merged replacement, got %v", repo.stored["tutor-1"])
	}
}

func TestScheduleService_RejectedEditDoesNotReachStore(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewDefaultScheduleService(repo)
	ctx := context.Background()

	if _, err := svc.AddRange(ctx, "tutor-1", models.AddRangeRequest{Day: "Monday", StartTime: "09:00", EndTime: "11:00"}); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}
	writes := repo.replaces

	_, err := svc.EditRange(ctx, "tutor-1", models.EditRangeRequest{
		Day: "Monday", OldStartTime: "09:00", OldEndTime: "10:00",
		NewStartTime: "12:00", NewEndTime: "13:00",
	})
	if !errors.Is(err, ErrStaleRange) {
		t.Fatalf("expected ErrStaleRange, got %v", err)
	}
	if repo.replaces != writes {
		t.Fatal("a rejected edit must not write to the store")
	}
}

func TestScheduleService_ToggleDayRestoreAcrossRequests(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewDefaultScheduleService(repo)
	ctx := context.Background()

	if _, err := svc.AddRange(ctx, "tutor-2", models.AddRangeRequest{Day: "Tuesday", StartTime: "09:00", EndTime: "10:30"}); err != nil {
		t.Fatalf("AddRange failed: %v", err)
	}

	nine, eleven := 9, 11
	toggle := models.ToggleDayRequest{Day: "Tuesday", StartHour: &nine, EndHour: &eleven}

	records, err := svc.ToggleDay(ctx, "tutor-2", toggle)
	if err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected the windowed selection cleared, got %v", records)
	}

	// The restore works on a later request: the cleared selection is kept
	// per session, not inside the stored week.
	records, err = svc.ToggleDay(ctx, "tutor-2", toggle)
	if err != nil {
		t.Fatalf("ToggleDay failed: %v", err)
	}
	if len(records) != 1 || records[0].StartTime != "09:00" || records[0].EndTime != "10:30" {
		t.Fatalf("expected 09:00-10:30 restored, got %v", records)
	}
}

func TestScheduleService_ReplaceNormalizes(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := NewDefaultScheduleService(repo)
	ctx := context.Background()

	records, err := svc.ReplaceAvailability(ctx, "tutor-3", []models.AvailabilityRecord{
		{Day: "Monday", StartTime: "09:00:00", EndTime: "10:00:00"},
		{Day: "Monday", StartTime: "09:30", EndTime: "11:00"},
	})
	if err != nil {
		t.Fatalf("ReplaceAvailability failed: %v", err)
	}
	if len(records) != 1 || records[0].StartTime != "09:00" || records[0].EndTime != "11:00" {
		t.Fatalf("expected normalized 09:00-11:00, got %v", records)
	}

	if _, err := svc.ReplaceAvailability(ctx, "tutor-3", []models.AvailabilityRecord{
		{Day: "Someday", StartTime: "09:00", EndTime: "10:00"},
	}); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}
