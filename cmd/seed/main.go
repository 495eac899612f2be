package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/config"
	"github.com/autoplus/concesionaria/internal/container"
	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/internal/domain/repository"
	"github.com/autoplus/concesionaria/internal/infrastructure/storage"
	"github.com/autoplus/concesionaria/internal/router"
	"github.com/autoplus/concesionaria/pkg/helpers"
	"github.com/autoplus/concesionaria/pkg/validation"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel, nil)
	ctx := context.Background()

	// Schema and roles are applied by the migrations
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open store")
	}
	defer store.Close()
	for _, r := range entity.Roles() {
		fmt.Printf("role ensured: %s\n", r)
	}

	if cfg.AdminEmail == "" {
		fmt.Println("ADMIN_EMAIL not set; no administrator seeded")
		return
	}
	if err := validation.ValidatePassword(cfg.AdminPassword); err != nil {
		logger.WithError(err).Fatal("ADMIN_PASSWORD does not satisfy the password policy")
	}

	hasher, err := helpers.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		logger.WithError(err).Fatal("invalid password scheme")
	}
	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}

	container.SetConfig(cfg)
	container.SetSQLDB(store.DB)
	container.SetPGPool(store.Pool)
	repo := router.BuildUserRepository()

	now := time.Now().UTC()
	admin := &entity.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         entity.RoleAdministrator,
		RegisteredAt: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	switch err := repo.Create(ctx, admin); {
	case err == nil:
		fmt.Printf("seeded administrator: id=%d email=%s name=%s\n", admin.ID, admin.Email, admin.Name)
	case errors.Is(err, repository.ErrDuplicateEmail):
		// Existing account: promote it, keep its password
		if err := repo.UpdateRole(ctx, admin.Email, entity.RoleAdministrator); err != nil {
			logger.WithError(err).Fatal("failed to promote existing user")
		}
		fmt.Printf("promoted existing user to %s: email=%s\n", entity.RoleNameAdministrator, admin.Email)
	default:
		logger.WithError(err).Fatal("failed to seed administrator")
	}
}
