// internal/app/features/syllabus/handler.go
package syllabus

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/features/availability"
	coursestore "github.com/dalemusser/coursehub/internal/app/store/courses"
	lessonstore "github.com/dalemusser/coursehub/internal/app/store/lessons"
	settingsstore "github.com/dalemusser/coursehub/internal/app/store/settings"
	unitstore "github.com/dalemusser/coursehub/internal/app/store/units"
	"github.com/dalemusser/coursehub/internal/app/system/apiutil"
	"github.com/dalemusser/coursehub/internal/app/system/auth"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/app/system/whitelist"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the student-facing course outline.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a syllabus Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// Serve renders the course outline for the current viewer.
// GET /api/courses/{courseID}/syllabus
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	course, err := coursestore.New(h.DB).GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, coursestore.ErrNotFound) {
			apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
			return
		}
		h.Log.Error("load course failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	isAdmin := authz.IsAdmin(r)

	// Private courses don't exist as far as non-admins can tell.
	if !course.Browsable && !isAdmin {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}

	units, err := unitstore.New(h.DB).ListByCourse(ctx, courseID)
	if err != nil {
		h.Log.Error("load units failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}
	lessons, err := lessonstore.New(h.DB).ListByCourse(ctx, courseID)
	if err != nil {
		h.Log.Error("load lessons failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}
	settings, err := settingsstore.New(h.DB).Get(ctx, courseID)
	if err != nil {
		h.Log.Error("load settings failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	lessonsByUnit := make(map[string][]models.Lesson)
	for _, l := range lessons {
		lessonsByUnit[l.UnitID] = append(lessonsByUnit[l.UnitID], l)
	}

	outline := Outline{
		CourseTitle:        course.Title,
		CourseAvailability: course.Availability,
		CanRegister:        canRegister(r, course, settings),
		Rows:               Build(settings, availability.Flatten(units, lessonsByUnit), isAdmin),
	}
	apiutil.SendJSON(w, h.Log, http.StatusOK, "OK.", outline, "")
}

// canRegister reports whether the current viewer could register: the course
// must have registration open and, when a whitelist is set, the viewer's
// email must be on it. Anonymous viewers may register only for courses with
// no whitelist.
func canRegister(r *http.Request, course models.Course, settings models.CourseSettings) bool {
	if !course.CanRegister {
		return false
	}
	u, signedIn := auth.CurrentUser(r)
	if !signedIn {
		return len(whitelist.Entries(settings.Whitelist)) == 0
	}
	return whitelist.Allows(settings.Whitelist, u.Email)
}
