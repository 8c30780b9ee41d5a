package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/nucleobets/backend/internal/config"
	"github.com/nucleobets/backend/internal/handlers"
	"github.com/nucleobets/backend/internal/middleware"
	"github.com/nucleobets/backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	analysisHandler *handlers.AnalysisHandler,
	tipHandler *handlers.TipHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public but gets a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Every authenticated route resolves the token to a live account and
	// re-checks the login gate.
	jwtProtected := middleware.JWTProtected(cfg)
	loadAccount := middleware.LoadAccount(authService)

	api.Post("/auth/logout", jwtProtected, loadAccount, authHandler.Logout)
	api.Get("/auth/me", jwtProtected, loadAccount, authHandler.Me)
	api.Put("/auth/change-password", jwtProtected, loadAccount, authHandler.ChangePassword)

	// Member feed
	api.Get("/analysis", jwtProtected, loadAccount, analysisHandler.ListPublic)
	api.Get("/valuable-tips", jwtProtected, loadAccount, tipHandler.ListPublic)
	api.Get("/stats", jwtProtected, loadAccount, statsHandler.Get)

	// Admin panel
	admin := api.Group("/admin", jwtProtected, loadAccount, middleware.AdminRequired())

	admin.Get("/users", accountHandler.List)
	admin.Post("/create-user", accountHandler.Create)
	admin.Post("/approve-user/:id", accountHandler.Approve)
	admin.Post("/deactivate-user/:id", accountHandler.Deactivate)
	admin.Delete("/delete-user/:id", accountHandler.Delete)

	admin.Get("/analysis", analysisHandler.ListAdmin)
	admin.Post("/analysis", analysisHandler.Create)
	admin.Put("/analysis/:id", analysisHandler.Update)
	admin.Delete("/analysis/:id", analysisHandler.Delete)

	admin.Get("/valuable-tips", tipHandler.ListAdmin)
	admin.Post("/valuable-tips", tipHandler.Create)
	admin.Put("/valuable-tips/:id", tipHandler.Update)
	admin.Delete("/valuable-tips/:id", tipHandler.Delete)
}
