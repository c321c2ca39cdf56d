package auditlog_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/store/audit"
	"github.com/dalemusser/coursehub/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAdminAction_OffModeIsNoop(t *testing.T) {
	// nil store: any attempt to persist would panic, which is the point.
	logger := auditlog.New(nil, zap.NewNop(), auditlog.Config{Admin: "off"})

	req := httptest.NewRequest("POST", "/", nil)
	logger.AdminAction(context.Background(), req, audit.EventCourseCreated,
		primitive.NewObjectID(), "Pat", nil, nil)
}

func TestAdminAction_LogMode(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := auditlog.New(nil, zap.New(core), auditlog.Config{Admin: "log"})

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	courseID := primitive.NewObjectID()
	logger.AdminAction(context.Background(), req, audit.EventAvailabilityUpdated,
		primitive.NewObjectID(), "Pat", &courseID, map[string]string{"elements": "3"})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["event_type"] != audit.EventAvailabilityUpdated {
		t.Errorf("event_type: got %v", fields["event_type"])
	}
	if fields["ip"] != "203.0.113.9" {
		t.Errorf("ip should prefer X-Forwarded-For: got %v", fields["ip"])
	}
	if fields["detail_elements"] != "3" {
		t.Errorf("detail_elements: got %v", fields["detail_elements"])
	}
}

func TestSecurityEvent_LogMode(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := auditlog.New(nil, zap.New(core), auditlog.Config{Security: "log"})

	req := httptest.NewRequest("PUT", "/", nil)
	logger.SecurityEvent(context.Background(), req, audit.EventXSRFRejected, "invalid xsrf token", nil)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["category"] != audit.CategorySecurity {
		t.Errorf("category: got %v, want %q", fields["category"], audit.CategorySecurity)
	}
	if fields["success"] != false {
		t.Errorf("success: got %v, want false", fields["success"])
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *auditlog.Logger
	req := httptest.NewRequest("POST", "/", nil)
	logger.AdminAction(context.Background(), req, audit.EventCourseCreated,
		primitive.NewObjectID(), "Pat", nil, nil)
	logger.SecurityEvent(context.Background(), req, audit.EventXSRFRejected, "reason", nil)
}
