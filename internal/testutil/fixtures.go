package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calls can be chained; later calls add to the same route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse creates a test course with the given title and availability
// policy. Returns the created course with its generated ID.
func (f *Fixtures) CreateCourse(ctx context.Context, title string, policy models.CourseAvailability) models.Course {
	f.t.Helper()

	course := models.Course{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Slug:      text.Fold(title),
		CreatedAt: time.Now().UTC(),
	}
	if err := course.SetAvailability(policy); err != nil {
		f.t.Fatalf("failed to set course availability: %v", err)
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateUnit creates a plain unit in the given course.
func (f *Fixtures) CreateUnit(ctx context.Context, courseID primitive.ObjectID, unitID, title string, ordinal int) models.Unit {
	f.t.Helper()
	return f.insertUnit(ctx, courseID, unitID, title, models.UnitTypeUnit, ordinal)
}

// CreateAssessment creates an assessment unit in the given course.
func (f *Fixtures) CreateAssessment(ctx context.Context, courseID primitive.ObjectID, unitID, title string, ordinal int) models.Unit {
	f.t.Helper()
	return f.insertUnit(ctx, courseID, unitID, title, models.UnitTypeAssessment, ordinal)
}

func (f *Fixtures) insertUnit(ctx context.Context, courseID primitive.ObjectID, unitID, title, unitType string, ordinal int) models.Unit {
	f.t.Helper()

	unit := models.Unit{
		ID:           primitive.NewObjectID(),
		CourseID:     courseID,
		UnitID:       unitID,
		Title:        title,
		Type:         unitType,
		Ordinal:      ordinal,
		Availability: models.AvailabilityCourse,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("units").InsertOne(ctx, unit); err != nil {
		f.t.Fatalf("failed to create test unit: %v", err)
	}
	return unit
}

// CreateLesson creates a lesson in the given unit.
func (f *Fixtures) CreateLesson(ctx context.Context, courseID primitive.ObjectID, lessonID, unitID, title string, ordinal int) models.Lesson {
	f.t.Helper()

	lesson := models.Lesson{
		ID:           primitive.NewObjectID(),
		CourseID:     courseID,
		LessonID:     lessonID,
		UnitID:       unitID,
		Title:        title,
		Ordinal:      ordinal,
		Availability: models.AvailabilityCourse,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("lessons").InsertOne(ctx, lesson); err != nil {
		f.t.Fatalf("failed to create test lesson: %v", err)
	}
	return lesson
}
