// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("configured handler timeouts from environment", zap.Int("count", n))
	}

	if appCfg.SeedTeacherUsername != "" {
		if err := ensureSeedTeacher(ctx, deps, appCfg, logger); err != nil {
			return err
		}
	}

	return nil
}

// ensureSeedTeacher creates the configured seed teacher if no record with
// that username exists yet. The password, when provided, is stored as a
// bcrypt hash for the wider system's login flow; announcement authorization
// never reads it.
func ensureSeedTeacher(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	store := teacherstore.New(deps.SchoolHubMongoDatabase)

	exists, err := store.Exists(ctx, appCfg.SeedTeacherUsername)
	if err != nil {
		return fmt.Errorf("seed teacher lookup: %w", err)
	}
	if exists {
		logger.Info("seed teacher already present", zap.String("username", appCfg.SeedTeacherUsername))
		return nil
	}

	teacher := models.Teacher{
		Username:    appCfg.SeedTeacherUsername,
		DisplayName: appCfg.SeedTeacherDisplayName,
	}
	if teacher.DisplayName == "" {
		teacher.DisplayName = appCfg.SeedTeacherUsername
	}
	if appCfg.SeedTeacherPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.SeedTeacherPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed teacher password hash: %w", err)
		}
		teacher.PasswordHash = string(hash)
	}

	created, err := store.Create(ctx, teacher)
	if err != nil {
		// A concurrent startup may have created it first; that is fine.
		if err == teacherstore.ErrDuplicateUsername {
			return nil
		}
		return fmt.Errorf("seed teacher create: %w", err)
	}

	logger.Info("created seed teacher",
		zap.String("username", created.Username),
		zap.String("id", created.ID.Hex()))
	return nil
}
