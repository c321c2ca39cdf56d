// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	availabilityfeature "github.com/dalemusser/coursehub/internal/app/features/availability"
	coursesfeature "github.com/dalemusser/coursehub/internal/app/features/courses"
	dashboardfeature "github.com/dalemusser/coursehub/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/coursehub/internal/app/features/health"
	syllabusfeature "github.com/dalemusser/coursehub/internal/app/features/syllabus"
	"github.com/dalemusser/coursehub/internal/app/store/audit"
	"github.com/dalemusser/coursehub/internal/app/system/auditlog"
	"github.com/dalemusser/coursehub/internal/app/system/auth"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/navigation"
	"github.com/dalemusser/coursehub/internal/app/system/xsrf"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// CourseHub wires the permission and navigation registries, lets each
// feature register itself, then mounts the feature routers: health, the
// dashboard metadata endpoints, course authoring, the availability editor,
// and the public syllabus.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// The session manager only verifies cookies; the SSO gateway issues them.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	xsrfMgr, err := xsrf.New(appCfg.XSRFKey, appCfg.XSRFTTL)
	if err != nil {
		logger.Error("xsrf manager init failed", zap.Error(err))
		return nil, err
	}

	// Registries are built here and injected; features never reach for
	// process-wide state.
	perms := authz.NewRegistry()
	nav := navigation.NewRegistry()
	availabilityfeature.Register(perms, nav)
	coursesfeature.Register(perms, nav)

	// Editors get the authoring and publishing permissions; admins hold
	// every registered permission implicitly.
	perms.Grant("editor", authz.PermEditCourseContent)
	perms.Grant("editor", authz.PermModifyAvailability)

	auditStore := audit.New(deps.CourseHubMongoDatabase)
	auditLogger := auditlog.New(auditStore, logger, auditlog.Config{
		Admin:    appCfg.AuditLogAdmin,
		Security: appCfg.AuditLogSecurity,
	})

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CourseHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Console dashboard metadata (nav entries, permission descriptors)
	dashboardHandler := dashboardfeature.NewHandler(nav, perms, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Course authoring and the availability editor
	coursesHandler := coursesfeature.NewHandler(deps.CourseHubMongoDatabase, perms, auditLogger, logger)
	availabilityHandler := availabilityfeature.NewHandler(deps.CourseHubMongoDatabase, perms, xsrfMgr, auditLogger, logger)
	syllabusHandler := syllabusfeature.NewHandler(deps.CourseHubMongoDatabase, logger)

	r.Route("/api/courses", func(r chi.Router) {
		r.Mount("/", coursesfeature.Routes(coursesHandler))
		r.Mount("/{courseID}/availability", availabilityfeature.Routes(availabilityHandler))
		r.Mount("/{courseID}/syllabus", syllabusfeature.Routes(syllabusHandler))
	})

	return r, nil
}
