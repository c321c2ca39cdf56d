// internal/app/features/courses/handler.go
package courses

import (
	"github.com/dalemusser/coursehub/internal/app/system/auditlog"
	"github.com/dalemusser/coursehub/internal/app/system/authz"
	"github.com/dalemusser/coursehub/internal/app/system/navigation"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the course-authoring endpoints: creating and listing courses
// and adding units, assessments, and lessons to them.
type Handler struct {
	DB    *mongo.Database
	Perms *authz.Registry
	Audit *auditlog.Logger
	Log   *zap.Logger
}

// NewHandler constructs a courses Handler.
func NewHandler(db *mongo.Database, perms *authz.Registry, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Perms: perms,
		Audit: auditLog,
		Log:   logger,
	}
}

// Register declares the feature's permission and dashboard navigation entry.
func Register(perms *authz.Registry, nav *navigation.Registry) {
	perms.Register(authz.PermEditCourseContent,
		"Can create and edit courses, units, and lessons")
	nav.RegisterSubNav("edit", "outline", "Outline", 100)
}
