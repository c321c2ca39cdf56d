// internal/app/features/availability/handler.go
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	coursestore "github.com/dalemusser/coursehub/internal/app/store/courses"
	lessonstore "github.com/dalemusser/coursehub/internal/app/store/lessons"
	settingsstore "github.com/dalemusser/coursehub/internal/app/store/settings"
	unitstore "github.com/dalemusser/coursehub/internal/app/store/units"
	"github.com/dalemusser/coursehub/internal/app/store/audit"
	"github.com/dalemusser/coursehub/internal/app/system/apiutil"
	"github.com/dalemusser/coursehub/internal/app/system/auditlog"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/app/system/xsrf"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ActionName is the console action the availability editor is registered
// under. XSRF tokens for the editor are bound to it.
const ActionName = "availability"

const accessDeniedMsg = "Access denied."

// Handler owns the availability editor endpoints.
type Handler struct {
	DB    *mongo.Database
	Perms *authz.Registry
	XSRF  *xsrf.Manager
	Audit *auditlog.Logger
	Log   *zap.Logger
}

// NewHandler constructs a Handler. The permission registry and XSRF manager
// are injected so nothing here depends on process-wide state.
func NewHandler(db *mongo.Database, perms *authz.Registry, xsrfMgr *xsrf.Manager, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Perms: perms,
		XSRF:  xsrfMgr,
		Audit: auditLog,
		Log:   logger,
	}
}

// Serve returns the availability editor entity for a course.
// GET /api/courses/{courseID}/availability
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if !authz.Can(r, h.Perms, authz.PermModifyAvailability) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, accessDeniedMsg)
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	course, units, lessonsByUnit, settings, err := h.loadCourseState(ctx, courseID)
	if err != nil {
		h.respondLoadError(w, err)
		return
	}

	token, err := h.XSRF.Token(ActionName)
	if err != nil {
		h.Log.Error("mint xsrf token failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	entity := Entity{
		CourseAvailability:    course.Availability,
		ShowLessonsInSyllabus: settings.ShowLessonsInSyllabus,
		Whitelist:             settings.Whitelist,
		ElementSettings:       Flatten(units, lessonsByUnit),
	}
	apiutil.SendJSON(w, h.Log, http.StatusOK, "OK.", entity, token)
}

// requestEnvelope is the form-encoded write envelope: the `request` field
// holds JSON with the anti-forgery token and the actual payload.
type requestEnvelope struct {
	XSRFToken string          `json:"xsrf_token"`
	Payload   json.RawMessage `json:"payload"`
}

// HandleSave applies submitted availability settings to a course.
// PUT /api/courses/{courseID}/availability
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Invalid form data.")
		return
	}

	var req requestEnvelope
	if err := json.Unmarshal([]byte(r.FormValue("request")), &req); err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Malformed request.")
		return
	}

	// Not coming through the dashboard, so check the token and permission
	// for ourselves. Both failures look the same to the client.
	if !h.XSRF.Verify(ActionName, req.XSRFToken) {
		h.Audit.SecurityEvent(r.Context(), r, audit.EventXSRFRejected, "invalid xsrf token", nil)
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, accessDeniedMsg)
		return
	}
	if !authz.Can(r, h.Perms, authz.PermModifyAvailability) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, accessDeniedMsg)
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}

	payload, err := decodePayload(req.Payload)
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Malformed payload.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	course, units, lessonsByUnit, settings, err := h.loadCourseState(ctx, courseID)
	if err != nil {
		h.respondLoadError(w, err)
		return
	}

	// A bad element type or availability policy is a client contract
	// violation; nothing has been persisted at this point.
	if err := Apply(&course, &settings, units, lessonsByUnit, payload); err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, err.Error())
		return
	}

	_, uname, actorID, _ := authz.UserCtx(r)
	settings.UpdatedByID = &actorID
	settings.UpdatedByName = uname

	// Scalar settings persist independently of the tree, matching the
	// original save order: settings first, then the tree.
	if err := settingsstore.New(h.DB).Save(ctx, courseID, settings); err != nil {
		h.Log.Error("save course settings failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to save settings.")
		return
	}
	if err := h.saveTree(ctx, course, units, lessonsByUnit); err != nil {
		h.Log.Error("save course tree failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to save course.")
		return
	}

	h.Audit.AdminAction(ctx, r, audit.EventAvailabilityUpdated, actorID, uname, &courseID, map[string]string{
		"elements": fmtInt(len(payload.ElementSettings)),
	})

	apiutil.SendJSON(w, h.Log, http.StatusOK, "Saved.", nil, "")
}

// ServeSchema returns the editor's form schema descriptor.
// GET /api/courses/{courseID}/availability/schema
func (h *Handler) ServeSchema(w http.ResponseWriter, r *http.Request) {
	if !authz.Can(r, h.Perms, authz.PermModifyAvailability) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, accessDeniedMsg)
		return
	}
	apiutil.SendJSON(w, h.Log, http.StatusOK, "OK.", Schema(), "")
}

// loadCourseState fetches the course, its ordered units, its lessons grouped
// by unit, and its scalar settings.
func (h *Handler) loadCourseState(ctx context.Context, courseID primitive.ObjectID) (models.Course, []models.Unit, map[string][]models.Lesson, models.CourseSettings, error) {
	course, err := coursestore.New(h.DB).GetByID(ctx, courseID)
	if err != nil {
		return models.Course{}, nil, nil, models.CourseSettings{}, err
	}
	units, err := unitstore.New(h.DB).ListByCourse(ctx, courseID)
	if err != nil {
		return models.Course{}, nil, nil, models.CourseSettings{}, err
	}
	lessons, err := lessonstore.New(h.DB).ListByCourse(ctx, courseID)
	if err != nil {
		return models.Course{}, nil, nil, models.CourseSettings{}, err
	}
	lessonsByUnit := make(map[string][]models.Lesson)
	for _, l := range lessons {
		lessonsByUnit[l.UnitID] = append(lessonsByUnit[l.UnitID], l)
	}
	settings, err := settingsstore.New(h.DB).Get(ctx, courseID)
	if err != nil {
		return models.Course{}, nil, nil, models.CourseSettings{}, err
	}
	return course, units, lessonsByUnit, settings, nil
}

// saveTree persists the whole mutated unit/lesson tree (and the course
// document carrying the course-wide policy) after a merge.
func (h *Handler) saveTree(ctx context.Context, course models.Course, units []models.Unit, lessonsByUnit map[string][]models.Lesson) error {
	if err := coursestore.New(h.DB).Replace(ctx, course); err != nil {
		return err
	}
	if err := unitstore.New(h.DB).ReplaceAll(ctx, course.ID, units); err != nil {
		return err
	}
	var lessons []models.Lesson
	for _, ls := range lessonsByUnit {
		lessons = append(lessons, ls...)
	}
	return lessonstore.New(h.DB).ReplaceAll(ctx, course.ID, lessons)
}

func (h *Handler) respondLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, coursestore.ErrNotFound) {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}
	h.Log.Error("load course state failed", zap.Error(err))
	apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
}

// decodePayload accepts the payload either as a JSON object or as a JSON
// string containing an object (older console clients double-encode it).
func decodePayload(raw json.RawMessage) (Payload, error) {
	var p Payload
	if len(raw) == 0 {
		return p, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return p, err
		}
		if inner == "" {
			return p, nil
		}
		raw = json.RawMessage(inner)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, err
	}
	return p, nil
}

func fmtInt(n int) string {
	return strconv.Itoa(n)
}
