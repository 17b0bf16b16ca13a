package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/store"
	"github.com/askfold/askfold/pkg/cryptox"
)

// provisionAdmin ensures the configured admin account exists and holds the
// admin role. Roles are never assigned through the API; this startup path is
// the only way an account becomes admin.
func provisionAdmin(ctx context.Context, cfg Config, st store.Store, logger *slog.Logger) error {
	if cfg.AdminUsername == "" {
		return nil
	}
	if cfg.AdminPassword == "" {
		return errors.New("BOARD_ADMIN_USERNAME is set but BOARD_ADMIN_PASSWORD is empty")
	}

	existing, err := st.Users().GetUserByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		if existing.Role.IsAdmin() {
			return nil
		}
		if err := st.Users().UpdateRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("failed to promote admin user: %w", err)
		}
		logger.Info("existing user promoted to admin", "username", cfg.AdminUsername)
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := cryptox.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = st.Users().CreateUser(ctx, domain.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("admin user provisioned", "username", cfg.AdminUsername)
	return nil
}
