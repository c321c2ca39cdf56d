// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/system/apiutil"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/navigation"
	"go.uber.org/zap"
)

// Handler serves the console dashboard metadata: the sub-navigation entries
// features registered at startup, filtered to what the signed-in user may
// actually do.
type Handler struct {
	Nav   *navigation.Registry
	Perms *authz.Registry
	Log   *zap.Logger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(nav *navigation.Registry, perms *authz.Registry, logger *zap.Logger) *Handler {
	return &Handler{Nav: nav, Perms: perms, Log: logger}
}

type permissionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Granted     bool   `json:"granted"`
}

type navResponse struct {
	Entries     []navigation.SubNav `json:"entries"`
	Permissions []permissionInfo    `json:"permissions"`
}

// ServeNav returns the dashboard navigation entries plus the registered
// permissions annotated with whether the caller holds them.
// GET /api/dashboard/nav
func (h *Handler) ServeNav(w http.ResponseWriter, r *http.Request) {
	role, _, _, ok := authz.UserCtx(r)
	if !ok {
		apiutil.SendError(w, h.Log, http.StatusUnauthorized, "Access denied.")
		return
	}

	perms := make([]permissionInfo, 0)
	for _, p := range h.Perms.Registered() {
		perms = append(perms, permissionInfo{
			Name:        string(p),
			Description: h.Perms.Description(p),
			Granted:     h.Perms.Allows(role, p),
		})
	}

	apiutil.SendJSON(w, h.Log, http.StatusOK, "OK.", navResponse{
		Entries:     h.Nav.Entries(),
		Permissions: perms,
	}, "")
}
