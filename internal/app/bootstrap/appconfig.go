// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request size limits.
// AppConfig is where everything specific to CourseHub lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration. Sessions are issued by the SSO
	// gateway in front of this service; CourseHub only reads them.
	SessionKey    string // Secret key for verifying session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: coursehub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// XSRF token configuration for state-changing console requests.
	XSRFKey string        // Secret key for signing XSRF tokens (min 32 chars)
	XSRFTTL time.Duration // How long an issued XSRF token stays valid

	// Audit logging settings
	AuditLogAdmin    string // Admin event logging: "all" (db+log), "db", "log", or "off"
	AuditLogSecurity string // Security event logging: "all" (db+log), "db", "log", or "off"
}
