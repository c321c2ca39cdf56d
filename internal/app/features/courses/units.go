// internal/app/features/courses/units.go
package courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/store/audit"
	coursestore "github.com/dalemusser/coursehub/internal/app/store/courses"
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

type createUnitRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"` // "unit" (default) or "assessment"

	// For assessments only: attach to an owning unit as its pre- or
	// post-assessment. Both must be set together.
	OwnerUnitID string `json:"owner_unit_id,omitempty"`
	Slot        string `json:"slot,omitempty"` // "pre" or "post"
}

// HandleCreateUnit adds a unit or assessment to a course. New elements start
// on the "course" availability so they follow the course-wide policy until
// an author says otherwise.
// POST /api/courses/{courseID}/units
func (h *Handler) HandleCreateUnit(w http.ResponseWriter, r *http.Request) {
	if !authz.Can(r, h.Perms, authz.PermEditCourseContent) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, "Access denied.")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}

	var req createUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Malformed request.")
		return
	}

	title := htmlsanitize.Sanitize(req.Title)
	if title == "" {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Title is required.")
		return
	}

	unitType := req.Type
	if unitType == "" {
		unitType = models.UnitTypeUnit
	}
	if unitType != models.UnitTypeUnit && unitType != models.UnitTypeAssessment {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Unknown unit type: "+req.Type)
		return
	}
	if (req.OwnerUnitID != "") != (req.Slot != "") {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "owner_unit_id and slot must be set together.")
		return
	}
	if req.OwnerUnitID != "" && unitType != models.UnitTypeAssessment {
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Only assessments can be attached to a unit.")
		return
	}
	slot := ""
	switch req.Slot {
	case "":
	case "pre":
		slot = "pre_assessment_id"
	case "post":
		slot = "post_assessment_id"
	default:
		apiutil.SendError(w, h.Log, http.StatusBadRequest, "Unknown slot: "+req.Slot)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := coursestore.New(h.DB).GetByID(ctx, courseID); err != nil {
		if errors.Is(err, coursestore.ErrNotFound) {
			apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
			return
		}
		h.Log.Error("load course failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	units := unitstore.New(h.DB)
	ordinal, err := units.CountByCourse(ctx, courseID)
	if err != nil {
		h.Log.Error("count units failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}

	unit := models.Unit{
		CourseID:     courseID,
		UnitID:       uuid.NewString(),
		Title:        title,
		Type:         unitType,
		Ordinal:      int(ordinal),
		Availability: models.AvailabilityCourse,
	}
	created, err := units.Insert(ctx, unit)
	if err != nil {
		h.Log.Error("create unit failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to create unit.")
		return
	}

	if slot != "" {
		if err := units.SetOwnedAssessment(ctx, courseID, req.OwnerUnitID, slot, created.UnitID); err != nil {
			h.Log.Error("attach assessment failed",
				zap.String("owner_unit_id", req.OwnerUnitID), zap.Error(err))
			apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Failed to attach assessment.")
			return
		}
	}

	_, uname, actorID, _ := authz.UserCtx(r)
	h.Audit.AdminAction(ctx, r, audit.EventUnitCreated, actorID, uname, &courseID, map[string]string{
		"unit_id": created.UnitID,
		"title":   created.Title,
		"type":    created.Type,
	})

	apiutil.SendJSON(w, h.Log, http.StatusCreated, "Created.", created, "")
}
