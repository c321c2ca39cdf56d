// internal/app/features/courses/lessons.go
package courses

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/store/audit"
	lessonstore "github.com/dalemusser/coursehub/internal/app/store/lessons"
	unitstore "github.com/dalemusser/coursehub/internal/app/store/units"
	"github.com/dalemusser/coursehub/internal/app/system/apiutil"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createLessonRequest struct {
	Title string `json:"title"`
}

// HandleCreateLesson adds a lesson to a plain unit.
// POST /api/courses/{courseID}/units/{unitID}/lessons
func (h *Handler) HandleCreateLesson(w http.ResponseWriter, r *http.Request) {
	if !authz.Can(r, h.Perms, authz.PermEditCourseContent) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, "Access denied.")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}
	unitID := chi.URLParam(r, "unitID")

	var req createLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Malformed request.")
		return
	}
	title := htmlsanitize.Sanitize(req.Title)
	if title == "" {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Title is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	owner, ok := h.findUnit(ctx, w, courseID, unitID)
	if !ok {
		return
	}
	if !owner.IsUnit() {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Lessons can only be added to units.")
		return
	}

	lessons := lessonstore.New(h.DB)
	ordinal, err := lessons.CountByUnit(ctx, courseID, unitID)
	if err != nil {
		h.Log.Error("count lessons failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	lesson := models.Lesson{
		CourseID:     courseID,
		LessonID:     uuid.NewString(),
		UnitID:       unitID,
		Title:        title,
		Ordinal:      int(ordinal),
		Availability: models.AvailabilityCourse,
	}
	created, err := lessons.Insert(ctx, lesson)
	if err != nil {
		h.Log.Error("create lesson failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to create lesson.")
		return
	}

	_, uname, actorID, _ := authz.UserCtx(r)
	h.Audit.AdminAction(ctx, r, audit.EventLessonCreated, actorID, uname, &courseID, map[string]string{
		"lesson_id": created.LessonID,
		"unit_id":   unitID,
		"title":     created.Title,
	})

	apiutil.SendJSON(w, h.Log, http.StatusCreated, "Created.", created, "")
}

// findUnit loads a unit by its public ID, writing the error response itself
// when the unit is missing or the lookup fails.
func (h *Handler) findUnit(ctx context.Context, w http.ResponseWriter, courseID primitive.ObjectID, unitID string) (models.Unit, bool) {
	units, err := unitstore.New(h.DB).ListByCourse(ctx, courseID)
	if err != nil {
		h.Log.Error("load units failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return models.Unit{}, false
	}
	for _, u := range units {
		if u.UnitID == unitID {
			return u, true
		}
	}
	apiutil.SendError(w, h.Log, http.StatusNotFound, "Unit not found.")
	return models.Unit{}, false
}
