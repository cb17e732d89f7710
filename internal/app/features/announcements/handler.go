// internal/app/features/announcements/handler.go
package announcements

import (
	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/app/store/audit"
	"github.com/dalemusser/schoolhub/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Announcements handlers.
type Handler struct {
	DB          *mongo.Database
	Store       *announcementstore.Store
	Audit       *auditlog.Logger
	AuditEvents *audit.Store
	Log         *zap.Logger
}

// NewHandler constructs an Announcements Handler. audit may be nil to
// disable audit logging (tests do this); the audit read endpoints then
// report whatever the collection holds.
func NewHandler(db *mongo.Database, auditLogger *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Store:       announcementstore.New(db),
		Audit:       auditLogger,
		AuditEvents: audit.New(db),
		Log:         logger,
	}
}
