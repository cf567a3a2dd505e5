package db

import (
	"context"
	"errors"

	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/repo/mongo"
	"github.com/rasahub/rasahub/internal/security"
)

// EnsureAdminUser creates the configured admin account if it does not exist
// yet. A blank admin email or password disables seeding.
func EnsureAdminUser(ctx context.Context, users *mongo.UsersRepo, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := users.GetByEmail(ctx, cfg.AdminEmail)

	if err == nil {
		return nil
	}

	if !errors.Is(err, mongo.ErrUserNotFound) {
		return err
	}

	hash, err := security.HashPassword(cfg.AdminPassword)

	if err != nil {
		return err
	}

	u := user.User{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Name:         cfg.AdminName,
		Phone:        user.PlaceholderContact,
		Address:      user.PlaceholderContact,
		ProfilePhoto: user.DefaultProfilePhoto,
		Role:         user.RoleAdmin,
	}

	_, err = users.Insert(ctx, u)

	return err
}
