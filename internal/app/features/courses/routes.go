// internal/app/features/courses/routes.go
package courses

import "github.com/go-chi/chi/v5"

// Routes returns the authoring subrouter, mounted under /api/courses.
// Handlers perform their own permission checks so the responses carry the
// standard envelope.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Post("/{courseID}/units", h.HandleCreateUnit)
	r.Post("/{courseID}/units/{unitID}/lessons", h.HandleCreateLesson)
	r.Get("/{courseID}/audit", h.ServeAuditTrail)
	return r
}
