// File: handlers/schedule_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhive/models"
	"tutorhive/services/schedule"
)

// fakeScheduleService routes every editor call through an in-memory week so
// handler tests exercise real validation without Mongo.
type fakeScheduleService struct {
	weeks map[string]*schedule.Week
}

func newFakeScheduleService() *fakeScheduleService {
	return &fakeScheduleService{weeks: make(map[string]*schedule.Week)}
}

func (f *fakeScheduleService) week(tutorID string) *schedule.Week {
	w, ok := f.weeks[tutorID]
	if !ok {
		w = schedule.NewWeek()
		f.weeks[tutorID] = w
	}
	return w
}

func (f *fakeScheduleService) GetAvailability(_ context.Context, tutorID string) ([]models.AvailabilityRecord, error) {
	return f.week(tutorID).Records(), nil
}

func (f *fakeScheduleService) ReplaceAvailability(_ context.Context, tutorID string, records []models.AvailabilityRecord) ([]models.AvailabilityRecord, error) {
	w, err := schedule.WeekFromRecords(records)
	if err != nil {
		return nil, err
	}
	f.weeks[tutorID] = w
	return w.Records(), nil
}

func (f *fakeScheduleService) AddRange(_ context.Context, tutorID string, req models.AddRangeRequest) ([]models.AvailabilityRecord, error) {
	w := f.week(tutorID)
	editor := schedule.NewEditor(w, nil)
	day, err := schedule.ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	if err := editor.AddRange(day, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	return w.Records(), nil
}

func (f *fakeScheduleService) EditRange(_ context.Context, tutorID string, req models.EditRangeRequest) ([]models.AvailabilityRecord, error) {
	return nil, schedule.ErrStaleRange
}

func (f *fakeScheduleService) DeleteRange(_ context.Context, tutorID string, req models.DeleteRangeRequest) ([]models.AvailabilityRecord, error) {
	return f.week(tutorID).Records(), nil
}

func (f *fakeScheduleService) ToggleSlot(_ context.Context, tutorID string, req models.ToggleSlotRequest) ([]models.AvailabilityRecord, error) {
	return f.week(tutorID).Records(), nil
}

func (f *fakeScheduleService) ToggleDay(_ context.Context, tutorID string, req models.ToggleDayRequest) ([]models.AvailabilityRecord, error) {
	w := f.week(tutorID)
	editor := schedule.NewEditor(w, nil)
	day, err := schedule.ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	if err := editor.ToggleDay(day); err != nil {
		return nil, err
	}
	return w.Records(), nil
}

func newScheduleTestRouter(svc schedule.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("tutorID", "tutor-1")
	})
	h := NewScheduleHandler(svc)
	r.GET("/availability", h.GetAvailabilityHandler)
	r.POST("/availability/ranges", h.AddRangeHandler)
	r.PUT("/availability/ranges", h.EditRangeHandler)
	r.POST("/availability/days/:day/toggle", h.ToggleDayHandler)
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddRangeHandler_ReturnsMergedWeek(t *testing.T) {
	r := newScheduleTestRouter(newFakeScheduleService())

	w := performJSON(r, http.MethodPost, "/availability/ranges", models.AddRangeRequest{
		Day: "Monday", StartTime: "09:00", EndTime: "11:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodPost, "/availability/ranges", models.AddRangeRequest{
		Day: "Monday", StartTime: "10:00", EndTime: "13:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Availability []models.AvailabilityRecord `json:"availability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, "09:00", resp.Availability[0].StartTime)
	assert.Equal(t, "13:00", resp.Availability[0].EndTime)
}

func TestAddRangeHandler_BadInput(t *testing.T) {
	r := newScheduleTestRouter(newFakeScheduleService())

	// Missing fields fail binding.
	w := performJSON(r, http.MethodPost, "/availability/ranges", gin.H{"day": "Monday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A malformed clock time fails the editor.
	w = performJSON(r, http.MethodPost, "/availability/ranges", models.AddRangeRequest{
		Day: "Monday", StartTime: "9am", EndTime: "11:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// An unknown day name fails the editor.
	w = performJSON(r, http.MethodPost, "/availability/ranges", models.AddRangeRequest{
		Day: "Funday", StartTime: "09:00", EndTime: "11:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditRangeHandler_StaleRangeConflicts(t *testing.T) {
	r := newScheduleTestRouter(newFakeScheduleService())

	w := performJSON(r, http.MethodPut, "/availability/ranges", models.EditRangeRequest{
		Day:          "Monday",
		OldStartTime: "09:00", OldEndTime: "10:00",
		NewStartTime: "12:00", NewEndTime: "13:00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestToggleDayHandler_EmptyBodyMeansFullDay(t *testing.T) {
	r := newScheduleTestRouter(newFakeScheduleService())

	w := performJSON(r, http.MethodPost, "/availability/days/Saturday/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Availability []models.AvailabilityRecord `json:"availability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, "00:00", resp.Availability[0].StartTime)
	assert.Equal(t, "24:00", resp.Availability[0].EndTime)
}

func TestToggleDayHandler_UnknownDay(t *testing.T) {
	r := newScheduleTestRouter(newFakeScheduleService())

	w := performJSON(r, http.MethodPost, "/availability/days/Funday/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
