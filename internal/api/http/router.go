package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-service/internal/api/http/handlers"
	"github.com/spec-kit/staffing-service/internal/auth"
	"github.com/spec-kit/staffing-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Consultants    *handlers.ConsultantsHandler
	Companies      *handlers.CompaniesHandler
	Submissions    *handlers.SubmissionsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health/live", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)
	authProtected.Post("/register", auth.RequireRole(domain.RoleAdmin), cfg.Auth.Register)

	consultants := api.Group("/consultants", cfg.AuthMiddleware.Handle)
	consultants.Get("/", cfg.Consultants.List)
	consultants.Get("/:id", cfg.Consultants.Get)
	consultants.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Consultants.Create)
	consultants.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Consultants.Update)
	consultants.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Consultants.Delete)

	companies := api.Group("/companies", cfg.AuthMiddleware.Handle)
	companies.Get("/", cfg.Companies.List)
	companies.Post("/", auth.RequireRole(domain.RoleAdmin), cfg.Companies.Create)
	companies.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Companies.Update)
	companies.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Companies.Delete)

	submissions := api.Group("/submissions", cfg.AuthMiddleware.Handle)
	submissions.Get("/stats", cfg.Submissions.Stats)
	submissions.Get("/", cfg.Submissions.List)
	submissions.Post("/", cfg.Submissions.Create)
	submissions.Put("/:id", cfg.Submissions.Update)
	submissions.Delete("/:id", cfg.Submissions.Delete)
}
