// File: services/course/service_test.go
package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tutorhive/models"
)

type fakeCourseRepo struct {
	subjects map[string]models.Subject
	courses  map[string]models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		subjects: make(map[string]models.Subject),
		courses:  make(map[string]models.Course),
	}
}

func (f *fakeCourseRepo) CreateSubject(_ context.Context, subject *models.Subject) error {
	f.subjects[subject.ID] = *subject
	return nil
}

func (f *fakeCourseRepo) GetSubjects(_ context.Context) ([]models.Subject, error) {
	out := []models.Subject{}
	for _, s := range f.subjects {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCourseRepo) GetSubjectByID(_ context.Context, id string) (*models.Subject, error) {
	s, ok := f.subjects[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeCourseRepo) CreateCourse(_ context.Context, course *models.Course) error {
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseRepo) GetCourseByID(_ context.Context, id string) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (f *fakeCourseRepo) GetCoursesByTutor(_ context.Context, tutorID string) ([]models.Course, error) {
	out := []models.Course{}
	for _, c := range f.courses {
		if c.TutorID == tutorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) GetCoursesBySubject(_ context.Context, subjectID string) ([]models.Course, error) {
	out := []models.Course{}
	for _, c := range f.courses {
		if c.SubjectID == subjectID && c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) UpdateCourse(_ context.Context, id string, updateDoc bson.M) error {
	c, ok := f.courses[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if title, ok := updateDoc["title"].(string); ok {
		c.Title = title
	}
	if price, ok := updateDoc["pricePerLesson"].(int64); ok {
		c.PricePerLesson = price
	}
	if active, ok := updateDoc["active"].(bool); ok {
		c.Active = active
	}
	f.courses[id] = c
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.courses, id)
	return nil
}

type fakeTutorRepo struct {
	tutors map[string]models.Tutor
}

func (f *fakeTutorRepo) GetByID(_ context.Context, id string) (*models.Tutor, error) {
	t, ok := f.tutors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &t, nil
}

func (f *fakeTutorRepo) GetByEmail(_ context.Context, email string) (*models.Tutor, error) {
	for _, t := range f.tutors {
		if t.Email == email {
			return &t, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeTutorRepo) GetByStatus(_ context.Context, status string) ([]models.Tutor, error) {
	out := []models.Tutor{}
	for _, t := range f.tutors {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTutorRepo) Create(_ context.Context, tutor *models.Tutor) error {
	f.tutors[tutor.ID] = *tutor
	return nil
}

func (f *fakeTutorRepo) UpdateSetDocument(_ context.Context, id string, _ bson.M) error {
	if _, ok := f.tutors[id]; !ok {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (f *fakeTutorRepo) Delete(_ context.Context, id string) error {
	delete(f.tutors, id)
	return nil
}

func newTestCourseService() (*DefaultCourseService, *fakeCourseRepo) {
	repo := newFakeCourseRepo()
	tutors := &fakeTutorRepo{tutors: map[string]models.Tutor{
		"tutor-active":  {ID: "tutor-active", Status: models.TutorStatusActive},
		"tutor-pending": {ID: "tutor-pending", Status: models.TutorStatusPendingReview},
	}}
	return &DefaultCourseService{Repo: repo, Tutors: tutors}, repo
}

func TestCreateCourse(t *testing.T) {
	svc, repo := newTestCourseService()
	ctx := context.Background()

	subject, err := svc.CreateSubject(ctx, models.Subject{Name: "Mathematics"})
	require.NoError(t, err)
	require.NotEmpty(t, subject.ID)

	created, err := svc.CreateCourse(ctx, "tutor-active", models.CreateCourseRequest{
		SubjectID:      subject.ID,
		Title:          "Algebra basics",
		PricePerLesson: 2500,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, "tutor-active", created.TutorID)
	assert.Len(t, repo.courses, 1)
}

func TestCreateCourse_RequiresActiveTutor(t *testing.T) {
	svc, _ := newTestCourseService()
	ctx := context.Background()

	subject, err := svc.CreateSubject(ctx, models.Subject{Name: "Physics"})
	require.NoError(t, err)

	req := models.CreateCourseRequest{SubjectID: subject.ID, Title: "Mechanics", PricePerLesson: 3000}

	_, err = svc.CreateCourse(ctx, "tutor-pending", req)
	assert.ErrorIs(t, err, ErrTutorNotActive)

	_, err = svc.CreateCourse(ctx, "tutor-missing", req)
	assert.ErrorIs(t, err, ErrTutorNotActive)
}

func TestCreateCourse_UnknownSubject(t *testing.T) {
	svc, _ := newTestCourseService()

	_, err := svc.CreateCourse(context.Background(), "tutor-active", models.CreateCourseRequest{
		SubjectID:      "no-such-subject",
		Title:          "Algebra basics",
		PricePerLesson: 2500,
	})
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestUpdateCourse_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestCourseService()
	ctx := context.Background()

	subject, err := svc.CreateSubject(ctx, models.Subject{Name: "Chemistry"})
	require.NoError(t, err)
	created, err := svc.CreateCourse(ctx, "tutor-active", models.CreateCourseRequest{
		SubjectID:      subject.ID,
		Title:          "Organic chemistry",
		PricePerLesson: 4000,
	})
	require.NoError(t, err)

	_, err = svc.UpdateCourse(ctx, "someone-else", created.ID, models.UpdateCourseRequest{Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrNotCourseOwner)

	updated, err := svc.UpdateCourse(ctx, "tutor-active", created.ID, models.UpdateCourseRequest{Title: "Organic chemistry II"})
	require.NoError(t, err)
	assert.Equal(t, "Organic chemistry II", updated.Title)
}

func TestDeleteCourse(t *testing.T) {
	svc, repo := newTestCourseService()
	ctx := context.Background()

	subject, err := svc.CreateSubject(ctx, models.Subject{Name: "Biology"})
	require.NoError(t, err)
	created, err := svc.CreateCourse(ctx, "tutor-active", models.CreateCourseRequest{
		SubjectID:      subject.ID,
		Title:          "Cell biology",
		PricePerLesson: 2000,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, "tutor-active", created.ID))
	assert.Empty(t, repo.courses)

	err = svc.DeleteCourse(ctx, "tutor-active", created.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
