package schedule

import (
	"context"
	"sync"

	availabilityRepo "tutorhive/database/repository/availability"
	"tutorhive/models"
)

// ScheduleService is the application boundary of the availability engine.
// Every mutating operation loads the tutor's week, applies one editor
// operation, and flushes the whole week back: the stored range list for
// each day is always a full replacement, never a partial update.
type ScheduleService interface {
	GetAvailability(ctx context.Context, tutorID string) ([]models.AvailabilityRecord, error)
	ReplaceAvailability(ctx context.Context, tutorID string, records []models.AvailabilityRecord) ([]models.AvailabilityRecord, error)
	AddRange(ctx context.Context, tutorID string, req models.AddRangeRequest) ([]models.AvailabilityRecord, error)
	EditRange(ctx context.Context, tutorID string, req models.EditRangeRequest) ([]models.AvailabilityRecord, error)
	DeleteRange(ctx context.Context, tutorID string, req models.DeleteRangeRequest) ([]models.AvailabilityRecord, error)
	ToggleSlot(ctx context.Context, tutorID string, req models.ToggleSlotRequest) ([]models.AvailabilityRecord, error)
	ToggleDay(ctx context.Context, tutorID string, req models.ToggleDayRequest) ([]models.AvailabilityRecord, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo availabilityRepo.AvailabilityRepository

	// cleared keeps each tutor+day's last bulk-cleared selection so a
	// second day toggle restores it. Session-local: it lives in process
	// memory and is never persisted.
	mu      sync.Mutex
	cleared map[string]SlotSet
}

// NewDefaultScheduleService constructs the service.
func NewDefaultScheduleService(repo availabilityRepo.AvailabilityRepository) *DefaultScheduleService {
	return &DefaultScheduleService{
		Repo:    repo,
		cleared: make(map[string]SlotSet),
	}
}
