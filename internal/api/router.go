package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projethub/projethub/internal/api/handler"
	"github.com/projethub/projethub/internal/api/middleware"
	"github.com/projethub/projethub/internal/core/ports"
	"github.com/projethub/projethub/internal/core/service"
	"github.com/projethub/projethub/internal/core/token"
	mongodb "github.com/projethub/projethub/internal/infrastructure/db/mongo"
	redisdb "github.com/projethub/projethub/internal/infrastructure/db/redis"
)

// Dependencies bundles everything the router needs to wire the application.
type Dependencies struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens *token.Service
	Audit  ports.AuditRecorder
	// FrontendURL is the browser origin allowed to send credentialed requests.
	FrontendURL string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("projethub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	projetRepo := mongodb.NewProjetRepository(deps.DB)
	reviewRepo := mongodb.NewReviewRepository(deps.DB)
	categoryRepo := redisdb.NewCategoryCache(deps.Redis, mongodb.NewCategoryRepository(deps.DB), deps.Logger)

	cascade := service.NewCascade(projetRepo, reviewRepo, deps.Logger)
	authService := service.NewAuthService(userRepo, deps.Tokens, deps.Audit, deps.Logger)
	userService := service.NewUserService(userRepo, deps.Audit, deps.Logger)
	projetService := service.NewProjetService(projetRepo, reviewRepo, userRepo, categoryRepo, cascade, deps.Audit, deps.Logger)
	reviewService := service.NewReviewService(reviewRepo, projetRepo, userRepo, deps.Audit, deps.Logger)

	authHandler := handler.NewAuthHandler(authService, deps.Tokens.TTL())
	userHandler := handler.NewUserHandler(userService)
	projetHandler := handler.NewProjetHandler(projetService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	session := middleware.Session(deps.Tokens)
	admin := middleware.RequireAdmin()

	// --- Session probe ---
	e.GET("/check-auth", authHandler.CheckAuth, session)

	// --- Users ---
	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout)
	users.GET("/all", userHandler.List, session, admin)
	users.DELETE("/delete/:id", userHandler.Delete, session, admin)
	users.GET("/me/projets", projetHandler.Mine, session)

	// --- Projets ---
	projets := e.Group("/projets")
	projets.POST("", projetHandler.Create, session)
	projets.GET("", projetHandler.List)
	projets.GET("/categories", projetHandler.Categories)
	projets.GET("/:id", projetHandler.Get)
	projets.PUT("/:id", projetHandler.Update, session)
	projets.DELETE("/:id", projetHandler.Delete, session)

	// --- Reviews ---
	reviews := e.Group("/reviews")
	reviews.GET("/projet/:id", reviewHandler.ListByProjet)
	reviews.POST("/projet/:id", reviewHandler.Add, session)
	reviews.PUT("/:id", reviewHandler.Update, session)
	reviews.DELETE("/:id", reviewHandler.Delete, session)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
