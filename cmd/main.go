package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/config"
	"github.com/autoplus/concesionaria/internal/container"
	"github.com/autoplus/concesionaria/internal/infrastructure/storage"
	"github.com/autoplus/concesionaria/internal/interface/console"
	"github.com/autoplus/concesionaria/internal/router"
	"github.com/autoplus/concesionaria/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := helpers.OpenLogFile(cfg.LogFile)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open log file")
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel, logOut)

	ctx := context.Background()

	// Store, schema and role seed
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open store")
	}
	defer store.Close()

	hasher, err := helpers.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		logger.WithError(err).Fatal("invalid password scheme")
	}

	// Optional Redis session mirror and login throttling
	if cfg.RedisEnabled() {
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable; session mirror disabled")
		} else {
			defer func() { _ = rdb.Close() }()
			container.SetRedis(rdb)
		}
	}

	// Optional welcome email queue
	if cfg.RabbitMQEnabled() {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; welcome emails disabled")
		} else {
			defer pub.Close()
			container.SetRabbitPub(pub)
		}
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetSQLDB(store.DB)
	container.SetPGPool(store.Pool)
	container.SetHasher(hasher)
	container.SetJWT(helpers.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL))

	helpers.LogInfo(logger, "console starting", logrus.Fields{
		"driver":   cfg.DBDriver,
		"redis":    container.GetRedis() != nil,
		"rabbitmq": container.GetRabbitPub() != nil,
	})

	reg := router.NewRegistry()
	svc := router.InitModules(reg)
	reg.RegisterAll()

	d := router.NewDispatcher(reg, console.NewTerminal(os.Stdin, os.Stdout), logger)
	d.Sessions = svc
	if err := d.Run(ctx); err != nil {
		helpers.LogError(logger, "console stopped", err, nil)
		store.Close()
		os.Exit(1)
	}
}
