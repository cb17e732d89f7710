// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	announcementsfeature "github.com/dalemusser/schoolhub/internal/app/features/announcements"
	healthfeature "github.com/dalemusser/schoolhub/internal/app/features/health"
	"github.com/dalemusser/schoolhub/internal/app/store/audit"
	"github.com/dalemusser/schoolhub/internal/app/system/auditlog"
	"github.com/dalemusser/schoolhub/internal/app/system/teacherauth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. SchoolHub mounts the health endpoint
// and the announcements API; privileged announcement routes pass through
// the teacher verifier.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	auditLogger := auditlog.New(
		audit.New(deps.SchoolHubMongoDatabase),
		logger,
		auditlog.Config{Announcements: appCfg.AuditLogAnnouncements},
	)

	verifier := teacherauth.NewVerifier(deps.SchoolHubMongoDatabase, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.SchoolHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Announcements API
	annHandler := announcementsfeature.NewHandler(deps.SchoolHubMongoDatabase, auditLogger, logger)
	r.Mount("/announcements", announcementsfeature.Routes(annHandler, verifier))

	return r, nil
}
