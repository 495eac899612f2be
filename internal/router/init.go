package router

import (
	"github.com/autoplus/concesionaria/internal/application"
	"github.com/autoplus/concesionaria/internal/container"
	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/internal/domain/repository"
	"github.com/autoplus/concesionaria/internal/infrastructure/inventory"
	"github.com/autoplus/concesionaria/internal/infrastructure/migrations"
	pginfra "github.com/autoplus/concesionaria/internal/infrastructure/postgres"
	sqliteinfra "github.com/autoplus/concesionaria/internal/infrastructure/sqlite"
	"github.com/autoplus/concesionaria/internal/interface/console"
	"github.com/autoplus/concesionaria/internal/interface/middleware"
	"github.com/autoplus/concesionaria/internal/router/modules"
)

// BuildUserRepository returns the store selected by DB_DRIVER.
func BuildUserRepository() repository.UserRepository {
	if container.GetConfig().DBDriver == migrations.DriverPostgres {
		return pginfra.NewUserRepository(container.GetPGPool())
	}
	return sqliteinfra.NewUserRepository(container.GetSQLDB())
}

// BuildService wires the application service from the container singletons.
func BuildService(repo repository.UserRepository) *application.Service {
	var pub application.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	return application.NewService(
		repo,
		container.GetHasher(),
		container.GetJWT(),
		container.GetRedis(),
		pub,
		container.GetLogger(),
		container.GetConfig().DealershipName,
	)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules.
// It returns the service so the dispatcher can close sessions left open.
func InitModules(r *Registry) *application.Service {
	cfg := container.GetConfig()
	svc := BuildService(BuildUserRepository())
	limiter := middleware.NewLimiter(container.GetRedis(), cfg.LoginMaxAttempts, cfg.LoginWindow)

	Mount(r, svc, inventory.NewCatalog(), limiter)
	r.Use(middleware.StepLogger(container.GetLogger()))
	return svc
}

// Mount registers the menus, titles and access middleware for svc.
func Mount(r *Registry, svc *application.Service, catalog *inventory.Catalog, limiter console.LoginLimiter) {
	r.Title(console.StateUnauthenticated, console.Banner(svc.Dealership))
	r.Title(console.StateUser, console.MsgUserMenu)
	r.Title(console.StateAdmin, console.MsgAdminMenu)

	r.Add(modules.NewAuthModule(console.NewAuthHandler(svc, limiter)))
	r.Add(modules.NewProfileModule(console.NewProfileHandler()))
	r.Add(modules.NewAdminModule(console.NewAdminHandler(svc)))
	r.Add(modules.NewCatalogModule(console.NewCatalogHandler(catalog)))

	r.Use(middleware.RequireSession(svc), console.StateUser, console.StateAdmin)
	r.Use(middleware.RequireRole(entity.RoleAdministrator), console.StateAdmin)
}
