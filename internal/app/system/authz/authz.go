// internal/app/system/authz/authz.go

// Package authz maps the session user onto roles and named permissions.
//
// Roles come from the session (set by the SSO gateway). Named permissions
// are registered by features at startup and granted to roles through the
// Registry, which is passed to handlers explicitly rather than held in
// package-level state.
package authz

import (
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/dalemusser/coursehub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission names a capability a feature can require.
type Permission string

// Permissions registered by CourseHub features.
const (
	// PermModifyAvailability gates editing course, unit, and lesson
	// availability and visibility.
	PermModifyAvailability Permission = "modify_availability"
	// PermEditCourseContent gates creating and editing courses, units, and
	// lessons.
	PermEditCourseContent Permission = "edit_course_content"
)

// Registry holds registered permissions and which roles hold them.
type Registry struct {
	mu     sync.RWMutex
	descs  map[Permission]string
	grants map[string]map[Permission]bool // role -> permission set
}

// NewRegistry returns an empty permission registry.
func NewRegistry() *Registry {
	return &Registry{
		descs:  make(map[Permission]string),
		grants: make(map[string]map[Permission]bool),
	}
}

// Register declares a permission with a human-readable description.
// Registering the same permission twice keeps the latest description.
func (reg *Registry) Register(p Permission, desc string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.descs[p] = desc
}

// Grant gives a role a permission. Role comparison is case-insensitive.
func (reg *Registry) Grant(role string, p Permission) {
	role = strings.ToLower(strings.TrimSpace(role))
	reg.mu.Lock()
	defer reg.mu.Unlock()
	set, ok := reg.grants[role]
	if !ok {
		set = make(map[Permission]bool)
		reg.grants[role] = set
	}
	set[p] = true
}

// Allows reports whether the role holds the permission. Admins hold every
// registered permission implicitly.
func (reg *Registry) Allows(role string, p Permission) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "admin" {
		return true
	}
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.grants[role][p]
}

// Registered returns the registered permission names sorted for stable
// display in the dashboard.
func (reg *Registry) Registered() []Permission {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Permission, 0, len(reg.descs))
	for p := range reg.descs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Description returns the registered description for a permission.
func (reg *Registry) Description(p Permission) string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.descs[p]
}

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present or the user ID is malformed it returns
// "visitor", "", NilObjectID, false, so ok=true always means a valid,
// authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// Can reports whether the current request's user holds the permission
// according to the registry. Unauthenticated requests never do.
func Can(r *http.Request, reg *Registry, p Permission) bool {
	role, _, _, ok := UserCtx(r)
	return ok && reg.Allows(role, p)
}
