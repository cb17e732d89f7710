// Package auditlog records privileged announcement mutations.
//
// Events go to MongoDB (via the audit store), to structured logs (via zap),
// or both, depending on configuration.
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/schoolhub/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Announcements controls logging for announcement mutation events.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only),
	// "off" (disabled).
	Announcements string
}

// Logger provides convenience methods for logging audit events.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.String("actor", event.Actor),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}

	if event.AnnouncementID != nil {
		fields = append(fields, zap.String("announcement_id", event.AnnouncementID.Hex()))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit
// logger).
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := l.config.Announcements
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if setting == "all" || setting == "db" {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// --- Announcement events ---

// AnnouncementCreated logs a successful announcement creation.
func (l *Logger) AnnouncementCreated(ctx context.Context, r *http.Request, actor string, id primitive.ObjectID) {
	l.Log(ctx, audit.Event{
		Category:       audit.CategoryAnnouncements,
		EventType:      audit.EventAnnouncementCreated,
		Actor:          actor,
		AnnouncementID: &id,
		IP:             getClientIP(r),
		UserAgent:      r.UserAgent(),
		Success:        true,
	})
}

// AnnouncementUpdated logs a successful announcement update. fields lists
// the field names that changed.
func (l *Logger) AnnouncementUpdated(ctx context.Context, r *http.Request, actor string, id primitive.ObjectID, fields []string) {
	details := map[string]string{}
	for _, f := range fields {
		details[f] = "changed"
	}
	l.Log(ctx, audit.Event{
		Category:       audit.CategoryAnnouncements,
		EventType:      audit.EventAnnouncementUpdated,
		Actor:          actor,
		AnnouncementID: &id,
		IP:             getClientIP(r),
		UserAgent:      r.UserAgent(),
		Success:        true,
		Details:        details,
	})
}

// AnnouncementDeleted logs a successful announcement deletion.
func (l *Logger) AnnouncementDeleted(ctx context.Context, r *http.Request, actor string, id primitive.ObjectID) {
	l.Log(ctx, audit.Event{
		Category:       audit.CategoryAnnouncements,
		EventType:      audit.EventAnnouncementDeleted,
		Actor:          actor,
		AnnouncementID: &id,
		IP:             getClientIP(r),
		UserAgent:      r.UserAgent(),
		Success:        true,
	})
}
