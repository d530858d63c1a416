// Package bootstrap wires up runtime dependencies shared by the server and
// the maintenance commands.
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"qenea/internal/cache"
	"qenea/internal/config"
	"qenea/internal/database"
	"qenea/internal/models"
	"qenea/internal/seed"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally seeds built-in data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevSuperuser(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development superuser: %w", err)
	}

	if opts.SeedBuiltIns {
		if err := seed.Tags(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in tags: %w", err)
		}
	}

	return db, r, nil
}

func ensureDevSuperuser(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapSuperuser {
		return nil
	}

	username := strings.TrimSpace(cfg.DevSuperuserUsername)
	if username == "" {
		username = "qenea_root"
	}
	email := strings.TrimSpace(strings.ToLower(cfg.DevSuperuserEmail))
	if email == "" {
		email = "root@qenea.local"
	}
	password := cfg.DevSuperuserPassword
	if password == "" {
		return fmt.Errorf("DEV_SUPERUSER_PASSWORD must be set when DEV_BOOTSTRAP_SUPERUSER is enabled")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash superuser password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var root models.User
		findErr := tx.First(&root, 1).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			root = models.User{
				ID:          1,
				Username:    username,
				Email:       email,
				Password:    string(hashedPassword),
				IsActive:    true,
				IsSuperuser: true,
				Profile:     &models.Profile{},
			}
			if err := tx.Create(&root).Error; err != nil {
				return err
			}
		case findErr != nil:
			return findErr
		default:
			updates := map[string]any{"is_superuser": true}
			if cfg.DevSuperuserForceCredential {
				updates["username"] = username
				updates["email"] = email
				updates["password"] = string(hashedPassword)
			}
			if err := tx.Model(&models.User{}).Where("id = ?", 1).Updates(updates).Error; err != nil {
				return err
			}
		}

		// Ensure users ID sequence is not behind explicit ID insertion.
		// This is PostgreSQL-specific.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(`
				SELECT setval(
					pg_get_serial_sequence('users', 'id'),
					GREATEST((SELECT COALESCE(MAX(id), 1) FROM users), 1),
					true
				)
			`).Error; err != nil {
				return fmt.Errorf("failed to reset users sequence: %w", err)
			}
		}

		return nil
	})
}
