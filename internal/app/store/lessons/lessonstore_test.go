package lessonstore_test

import (
	"testing"

	lessonstore "github.com/dalemusser/coursehub/internal/app/store/lessons"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListByCourse_GroupedOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	courseID := primitive.NewObjectID()
	fx.CreateLesson(ctx, courseID, "l3", "u2", "Unit Two Lesson", 0)
	fx.CreateLesson(ctx, courseID, "l2", "u1", "Second", 1)
	fx.CreateLesson(ctx, courseID, "l1", "u1", "First", 0)

	lessons, err := lessonstore.New(db).ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("ListByCourse failed: %v", err)
	}
	want := []string{"l1", "l2", "l3"}
	if len(lessons) != len(want) {
		t.Fatalf("count: got %d, want %d", len(lessons), len(want))
	}
	for i, l := range lessons {
		if l.LessonID != want[i] {
			t.Errorf("lessons[%d]: got %q, want %q", i, l.LessonID, want[i])
		}
	}
}

func TestCountByUnit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	store := lessonstore.New(db)

	courseID := primitive.NewObjectID()
	fx.CreateLesson(ctx, courseID, "l1", "u1", "First", 0)
	fx.CreateLesson(ctx, courseID, "l2", "u1", "Second", 1)
	fx.CreateLesson(ctx, courseID, "l3", "u2", "Other Unit", 0)

	n, err := store.CountByUnit(ctx, courseID, "u1")
	if err != nil {
		t.Fatalf("CountByUnit failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}

func TestReplaceAll_TouchesOnlyAvailabilityFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	store := lessonstore.New(db)

	courseID := primitive.NewObjectID()
	fx.CreateLesson(ctx, courseID, "l1", "u1", "Original Title", 0)

	edited := models.Lesson{
		LessonID:             "l1",
		Title:                "Renamed",
		Availability:         models.AvailabilityPublic,
		ShownWhenUnavailable: true,
	}
	if err := store.ReplaceAll(ctx, courseID, []models.Lesson{edited}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	lessons, err := store.ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("ListByCourse failed: %v", err)
	}
	if lessons[0].Availability != models.AvailabilityPublic || !lessons[0].ShownWhenUnavailable {
		t.Errorf("availability fields not written: %+v", lessons[0])
	}
	if lessons[0].Title != "Original Title" {
		t.Errorf("title must not be clobbered: got %q", lessons[0].Title)
	}
}
