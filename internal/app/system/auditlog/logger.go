// internal/app/system/auditlog/logger.go

// Package auditlog records admin actions to both the audit store and the
// structured log, controlled by a single mode knob.
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Mode values for Config.Admin and Config.Security.
//   - "all": MongoDB + zap
//   - "db":  MongoDB only
//   - "log": zap only
//   - "off": disabled
type Config struct {
	Admin    string
	Security string
}

// Logger provides convenience methods for recording audit events.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates an audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{store: store, zapLog: zapLog, config: config}
}

// AdminAction records a successful admin event with request context.
// Failures to persist the event are logged and otherwise swallowed; audit
// logging never fails the action being audited.
func (l *Logger) AdminAction(ctx context.Context, r *http.Request, eventType string, actorID primitive.ObjectID, actorName string, courseID *primitive.ObjectID, details map[string]string) {
	if l == nil || l.config.Admin == "off" {
		return
	}

	ev := audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: eventType,
		ActorID:   &actorID,
		ActorName: actorName,
		CourseID:  courseID,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details:   details,
	}

	l.record(ctx, l.config.Admin, ev)
}

// SecurityEvent records a rejected request (bad anti-forgery token, forged
// session) for later review. The actor may be unknown, so only the request
// context is captured.
func (l *Logger) SecurityEvent(ctx context.Context, r *http.Request, eventType, failureReason string, courseID *primitive.ObjectID) {
	if l == nil || l.config.Security == "off" {
		return
	}

	ev := audit.Event{
		Category:      audit.CategorySecurity,
		EventType:     eventType,
		CourseID:      courseID,
		IP:            clientIP(r),
		UserAgent:     r.UserAgent(),
		Success:       false,
		FailureReason: failureReason,
	}

	l.record(ctx, l.config.Security, ev)
}

func (l *Logger) record(ctx context.Context, mode string, ev audit.Event) {
	if mode == "all" || mode == "log" {
		l.logToZap(ev)
	}
	if mode == "all" || mode == "db" {
		if err := l.store.Insert(ctx, ev); err != nil {
			l.zapLog.Error("audit event insert failed",
				zap.String("event_type", ev.EventType),
				zap.Error(err))
		}
	}
}

// clientIP extracts the client IP, preferring reverse-proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event with consistent structure.
func (l *Logger) logToZap(ev audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", ev.Category),
		zap.String("event_type", ev.EventType),
		zap.Bool("success", ev.Success),
		zap.String("ip", ev.IP),
	}
	if ev.ActorID != nil {
		fields = append(fields, zap.String("actor_id", ev.ActorID.Hex()))
	}
	if ev.CourseID != nil {
		fields = append(fields, zap.String("course_id", ev.CourseID.Hex()))
	}
	if ev.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", ev.FailureReason))
	}
	for k, v := range ev.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}
	l.zapLog.Info("audit", fields...)
}
