// internal/app/features/syllabus/routes.go
package syllabus

import "github.com/go-chi/chi/v5"

// Routes returns the syllabus subrouter, mounted under
// /api/courses/{courseID}/syllabus. The outline is public; visibility
// filtering happens in the handler.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
