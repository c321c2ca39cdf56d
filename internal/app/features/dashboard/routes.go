// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes returns the dashboard subrouter, mounted under /api/dashboard.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/nav", h.ServeNav)
	return r
}
