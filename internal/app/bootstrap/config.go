// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SchoolHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, seed_teacher_username, etc.
//   - Environment variables: SCHOOLHUB_MONGO_URI, SCHOOLHUB_SEED_TEACHER_USERNAME, etc.
//   - Command-line flags: --mongo_uri, --seed_teacher_username, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "school_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Seed teacher (created on startup if missing)
	{Name: "seed_teacher_username", Default: "", Desc: "Username of the seed teacher (created on startup when set)"},
	{Name: "seed_teacher_display_name", Default: "", Desc: "Display name of the seed teacher"},
	{Name: "seed_teacher_password", Default: "", Desc: "Password for the seed teacher (stored bcrypt-hashed)"},

	// Audit logging settings
	{Name: "audit_log_announcements", Default: "all", Desc: "Announcement mutation logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SCHOOLHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SeedTeacherUsername:    appValues.String("seed_teacher_username"),
		SeedTeacherDisplayName: appValues.String("seed_teacher_display_name"),
		SeedTeacherPassword:    appValues.String("seed_teacher_password"),

		AuditLogAnnouncements: appValues.String("audit_log_announcements"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// SchoolHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.AuditLogAnnouncements {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("audit_log_announcements must be 'all', 'db', 'log', or 'off' (got %q)", appCfg.AuditLogAnnouncements)
	}

	return nil
}
