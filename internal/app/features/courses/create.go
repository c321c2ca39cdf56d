// internal/app/features/courses/create.go
package courses

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/coursehub/internal/app/store/audit"
	coursestore "github.com/dalemusser/coursehub/internal/app/store/courses"
	"github.com/dalemusser/coursehub/internal/app/system/apiutil"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.uber.org/zap"
)

type createCourseRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// HandleCreate creates a new course. New courses start private so nothing
// leaks before the author publishes through the availability editor.
// POST /api/courses
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !authz.Can(r, h.Perms, authz.PermEditCourseContent) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, "Access denied.")
		return
	}

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Malformed request.")
		return
	}

	title := htmlsanitize.Sanitize(req.Title)
	if title == "" {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Title is required.")
		return
	}
	slug := text.Fold(htmlsanitize.Sanitize(req.Slug))
	if slug == "" {
		slug = text.Fold(title)
	}

	_, uname, actorID, _ := authz.UserCtx(r)
	now := time.Now().UTC()
	course := models.Course{
		Title:         title,
		TitleCI:       text.Fold(title),
		Slug:          slug,
		CreatedAt:     now,
		CreatedByID:   &actorID,
		CreatedByName: uname,
	}
	if err := course.SetAvailability(models.CourseAvailabilityPrivate); err != nil {
		h.Log.Error("default availability rejected", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := coursestore.New(h.DB).Insert(ctx, course)
	if err != nil {
		h.Log.Error("create course failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to create course.")
		return
	}

	h.Audit.AdminAction(ctx, r, audit.EventCourseCreated, actorID, uname, &created.ID, map[string]string{
		"title": created.Title,
	})

	apiutil.SendJSON(w, h.Log, http.StatusCreated, "Created.", created, "")
}

// ServeList lists all courses for the console.
// GET /api/courses
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if !authz.Can(r, h.Perms, authz.PermEditCourseContent) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, "Access denied.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := coursestore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list courses failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to list courses.")
		return
	}
	apiutil.SendJSON(w, h.Log, http.StatusOK, "OK.", list, "")
}
