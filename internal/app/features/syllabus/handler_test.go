package syllabus_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/features/syllabus"
	settingsstore "github.com/dalemusser/coursehub/internal/app/store/settings"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func decodeOutline(t *testing.T, rec *httptest.ResponseRecorder) syllabus.Outline {
	t.Helper()
	var env struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	var outline syllabus.Outline
	if err := json.Unmarshal(env.Payload, &outline); err != nil {
		t.Fatalf("failed to parse outline: %v", err)
	}
	return outline
}

func TestServe_PrivateCourseHiddenFromVisitors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := syllabus.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Secret Course", models.CourseAvailabilityPrivate)

	req := httptest.NewRequest("GET", "/", nil)
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestServe_PrivateCourseVisibleToAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := syllabus.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Secret Course", models.CourseAvailabilityPrivate)
	fx.CreateUnit(ctx, course.ID, "u1", "Unit One", 0)

	req := testutil.NewAuthenticatedRequest("GET", "/", testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	outline := decodeOutline(t, rec)
	if outline.CourseTitle != "Secret Course" {
		t.Errorf("title: got %q, want %q", outline.CourseTitle, "Secret Course")
	}
	if len(outline.Rows) != 1 {
		t.Errorf("rows: got %d, want 1", len(outline.Rows))
	}
}

func TestServe_RegistrationGatedByWhitelist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := syllabus.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Open Course", models.CourseAvailabilityRegistrationRequired)
	err := settingsstore.New(db).Save(ctx, course.ID, models.CourseSettings{
		Whitelist: "allowed@test.com",
	})
	if err != nil {
		t.Fatalf("save settings failed: %v", err)
	}

	// Whitelisted student may register.
	allowed := testutil.StudentUser()
	allowed.Email = "allowed@test.com"
	req := testutil.NewAuthenticatedRequest("GET", "/", allowed)
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if outline := decodeOutline(t, rec); !outline.CanRegister {
		t.Error("whitelisted student should be able to register")
	}

	// Unlisted student may not.
	denied := testutil.StudentUser()
	denied.Email = "denied@test.com"
	req = testutil.NewAuthenticatedRequest("GET", "/", denied)
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec = httptest.NewRecorder()
	handler.Serve(rec, req)
	if outline := decodeOutline(t, rec); outline.CanRegister {
		t.Error("unlisted student should not be able to register")
	}

	// Anonymous visitors can't register while a whitelist is set.
	req = httptest.NewRequest("GET", "/", nil)
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec = httptest.NewRecorder()
	handler.Serve(rec, req)
	if outline := decodeOutline(t, rec); outline.CanRegister {
		t.Error("anonymous visitor should not register past a whitelist")
	}
}

func TestServe_UnknownCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := syllabus.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/", nil)
	req = testutil.WithChiURLParam(req, "courseID", primitive.NewObjectID().Hex())
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
