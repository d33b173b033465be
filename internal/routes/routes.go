package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rateview/storefront-backend/internal/config"
	"github.com/rateview/storefront-backend/internal/handlers"
	"github.com/rateview/storefront-backend/internal/middleware"
	"github.com/rateview/storefront-backend/internal/models"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	storeHandler *handlers.StoreHandler,
	ratingHandler *handlers.RatingHandler,
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

	// Auth — public, with a stricter limiter: 10 req/min per IP
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

	jwtGuard := middleware.JWTProtected(cfg)
	loadUser := middleware.LoadCurrentUser(db)

	// Auth — protected
	api.Post("/auth/logout", jwtGuard, loadUser, authHandler.Logout)
	api.Put("/auth/password", jwtGuard, loadUser, authHandler.UpdatePassword)
	api.Get("/auth/profile", jwtGuard, loadUser, authHandler.Profile)

	// Users — admin only
	users := api.Group("/users", jwtGuard, loadUser, middleware.RoleRequired(models.RoleAdmin))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/stats", userHandler.Stats)
	users.Get("/:id", userHandler.GetByID)

	// Stores — dashboard before :id so the path doesn't shadow it
	stores := api.Group("/stores", jwtGuard, loadUser)
	stores.Get("/owner/dashboard", middleware.RoleRequired(models.RoleStoreOwner), storeHandler.OwnerDashboard)
	stores.Post("/", middleware.RoleRequired(models.RoleAdmin), storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)

	// Ratings — USER role only
	ratings := api.Group("/ratings", jwtGuard, loadUser, middleware.RoleRequired(models.RoleUser))
	ratings.Post("/", ratingHandler.Submit)
	ratings.Get("/my-ratings", ratingHandler.MyRatings)
}
