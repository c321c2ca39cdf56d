package courses_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/features/courses"
	unitstore "github.com/dalemusser/coursehub/internal/app/store/units"
	"github.com/dalemusser/coursehub/internal/app/system/auditlog"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, db *mongo.Database) *courses.Handler {
	t.Helper()
	logger := zap.NewNop()
	perms := authz.NewRegistry()
	perms.Register(authz.PermEditCourseContent, "test")
	perms.Grant("editor", authz.PermEditCourseContent)
	auditLogger := auditlog.New(nil, logger, auditlog.Config{Admin: "off", Security: "off"})
	return courses.NewHandler(db, perms, auditLogger, logger)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodePayload(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		t.Fatalf("failed to parse payload: %v", err)
	}
}

func TestHandleCreate_NoPermission(t *testing.T) {
	handler := newHandler(t, nil)

	req := jsonRequest("POST", "/", `{"title":"New Course"}`)
	req = testutil.WithUser(req, testutil.StudentUser())
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleCreate_TitleRequired(t *testing.T) {
	handler := newHandler(t, nil)

	req := jsonRequest("POST", "/", `{"title":"   "}`)
	req = testutil.WithUser(req, testutil.EditorUser())
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCreate_StartsPrivateAndSanitized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newHandler(t, db)

	req := jsonRequest("POST", "/", `{"title":"Intro <script>alert(1)</script>to Go"}`)
	req = testutil.WithUser(req, testutil.EditorUser())
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created models.Course
	decodePayload(t, rec, &created)
	if strings.Contains(created.Title, "<script>") {
		t.Errorf("title not sanitized: %q", created.Title)
	}
	if created.Availability != models.CourseAvailabilityPrivate {
		t.Errorf("new course availability: got %q, want %q", created.Availability, "private")
	}
	if created.Browsable || created.CanRegister {
		t.Errorf("new course flags: browsable=%v can_register=%v, want false/false", created.Browsable, created.CanRegister)
	}
	if created.Slug == "" || created.TitleCI == "" {
		t.Errorf("derived fields missing: slug=%q title_ci=%q", created.Slug, created.TitleCI)
	}
}

func TestHandleCreateUnit_AssignsOrdinalAndID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Intro to Go", models.CourseAvailabilityPrivate)
	fx.CreateUnit(ctx, course.ID, "u1", "Existing", 0)

	req := jsonRequest("POST", "/", `{"title":"Unit Two"}`)
	req = testutil.WithUser(req, testutil.EditorUser())
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleCreateUnit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created models.Unit
	decodePayload(t, rec, &created)
	if created.UnitID == "" {
		t.Error("unit id not assigned")
	}
	if created.Ordinal != 1 {
		t.Errorf("ordinal: got %d, want 1", created.Ordinal)
	}
	if created.Type != models.UnitTypeUnit {
		t.Errorf("type: got %q, want %q", created.Type, models.UnitTypeUnit)
	}
	if created.Availability != models.AvailabilityCourse {
		t.Errorf("availability: got %q, want %q", created.Availability, "course")
	}
}

func TestHandleCreateUnit_AttachesAssessment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Intro to Go", models.CourseAvailabilityPrivate)
	fx.CreateUnit(ctx, course.ID, "u1", "Unit One", 0)

	req := jsonRequest("POST", "/", `{"title":"Pre Quiz","type":"assessment","owner_unit_id":"u1","slot":"pre"}`)
	req = testutil.WithUser(req, testutil.EditorUser())
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleCreateUnit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created models.Unit
	decodePayload(t, rec, &created)

	units, err := unitstore.New(db).ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourse failed: %v", err)
	}
	var owner *models.Unit
	for i := range units {
		if units[i].UnitID == "u1" {
			owner = &units[i]
		}
	}
	if owner == nil {
		t.Fatal("owner unit missing")
	}
	if owner.PreAssessmentID != created.UnitID {
		t.Errorf("pre_assessment_id: got %q, want %q", owner.PreAssessmentID, created.UnitID)
	}
}

func TestHandleCreateUnit_RejectsBadSlotCombos(t *testing.T) {
	handler := newHandler(t, nil)

	for _, body := range []string{
		`{"title":"Quiz","type":"assessment","owner_unit_id":"u1"}`,     // slot missing
		`{"title":"Quiz","type":"assessment","slot":"pre"}`,             // owner missing
		`{"title":"Quiz","type":"unit","owner_unit_id":"u1","slot":"pre"}`, // plain unit can't attach
		`{"title":"Quiz","type":"assessment","owner_unit_id":"u1","slot":"middle"}`,
		`{"title":"Quiz","type":"chapter"}`,
	} {
		req := jsonRequest("POST", "/", body)
		req = testutil.WithUser(req, testutil.EditorUser())
		req = testutil.WithChiURLParam(req, "courseID", "000000000000000000000001")
		rec := httptest.NewRecorder()
		handler.HandleCreateUnit(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status got %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleCreateLesson(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Intro to Go", models.CourseAvailabilityPrivate)
	fx.CreateUnit(ctx, course.ID, "u1", "Unit One", 0)
	fx.CreateLesson(ctx, course.ID, "l1", "u1", "Existing", 0)

	req := jsonRequest("POST", "/", `{"title":"Lesson Two"}`)
	req = testutil.WithUser(req, testutil.EditorUser())
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	req = testutil.WithChiURLParam(req, "unitID", "u1")
	rec := httptest.NewRecorder()
	handler.HandleCreateLesson(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created models.Lesson
	decodePayload(t, rec, &created)
	if created.Ordinal != 1 {
		t.Errorf("ordinal: got %d, want 1", created.Ordinal)
	}
	if created.UnitID != "u1" {
		t.Errorf("unit_id: got %q, want %q", created.UnitID, "u1")
	}
}

func TestHandleCreateLesson_RejectsAssessmentOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	course := fx.CreateCourse(ctx, "Intro to Go", models.CourseAvailabilityPrivate)
	fx.CreateAssessment(ctx, course.ID, "a1", "Quiz", 0)

	req := jsonRequest("POST", "/", `{"title":"Lesson"}`)
	req = testutil.WithUser(req, testutil.EditorUser())
	req = testutil.WithChiURLParam(req, "courseID", course.ID.Hex())
	req = testutil.WithChiURLParam(req, "unitID", "a1")
	rec := httptest.NewRecorder()
	handler.HandleCreateLesson(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newHandler(t, db)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	fx.CreateCourse(ctx, "Algebra", models.CourseAvailabilityPrivate)
	fx.CreateCourse(ctx, "Zoology", models.CourseAvailabilityPublic)

	req := testutil.NewAuthenticatedRequest("GET", "/", testutil.AdminUser())
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var list []models.Course
	decodePayload(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("count: got %d, want 2", len(list))
	}
	if list[0].Title != "Algebra" {
		t.Errorf("list[0]: got %q, want %q", list[0].Title, "Algebra")
	}
}
