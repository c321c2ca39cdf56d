// internal/app/features/availability/routes.go
package availability

import (
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
)

// Routes returns the availability editor subrouter, mounted under
// /api/courses/{courseID}/availability. The handlers do their own
// permission checks so unauthorized callers get the editor's fixed
// "Access denied." envelope rather than a generic middleware error.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	r.Put("/", h.HandleSave)
	r.Get("/schema", h.ServeSchema)
	return r
}

// Register declares the feature's permission and dashboard navigation entry
// on the injected registries. Called once from bootstrap.
func Register(perms *authz.Registry, nav *navigation.Registry) {
	perms.Register(authz.PermModifyAvailability,
		"Can set course, unit, or lesson availability and visibility")
	nav.RegisterSubNav("publish", ActionName, "Availability", 1000)
}
