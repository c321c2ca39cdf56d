// internal/app/features/courses/audittrail.go
package courses

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/coursehub/internal/app/store/audit"
	"github.com/dalemusser/coursehub/internal/app/system/apiutil"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeAuditTrail returns a course's recent audit events, newest first.
// Admin only: the trail exposes actor names and client IPs.
// GET /api/courses/{courseID}/audit
func (h *Handler) ServeAuditTrail(w http.ResponseWriter, r *http.Request) {
	if !authz.IsAdmin(r) {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, "Access denied.")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		apiutil.SendError(w, h.Log, http.StatusNotFound, "Course not found.")
		return
	}

	var limit int64
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.ParseInt(s, 10, 64)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := audit.New(h.DB).RecentForCourse(ctx, courseID, limit)
	if err != nil {
		h.Log.Error("load audit trail failed", zap.Error(err))
		apiutil.SendError(w, h.Log, http.StatusInternalServerError, "Internal error.")
		return
	}
	apiutil.SendJSON(w, h.Log, http.StatusOK, "OK.", events, "")
}
