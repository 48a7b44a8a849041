package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lanca/lanca-api/docs" // Swagger docs
	"github.com/lanca/lanca-api/internal/cache"
	"github.com/lanca/lanca-api/internal/config"
	"github.com/lanca/lanca-api/internal/database"
	"github.com/lanca/lanca-api/internal/handlers"
	"github.com/lanca/lanca-api/internal/jobs"
	"github.com/lanca/lanca-api/internal/metrics"
	"github.com/lanca/lanca-api/internal/middleware"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/services"
	"github.com/lanca/lanca-api/internal/storage"
	"github.com/lanca/lanca-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Lança API
// @version 1.0
// @description REST API for the Lança accounts payable ledger
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@lanca.app

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Ledger list cache: Redis when configured, in-process otherwise
	var cacheStore cache.Store = cache.NewMemoryStore()
	var redisStore *cache.RedisStore
	if cfg.RedisURL != "" {
		redisStore, err = cache.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, using in-memory cache", "error", err)
		} else {
			cacheStore = redisStore
			logger.Info("Connected to Redis")
		}
	}
	listCache := cache.NewListCache(cacheStore, cfg.CacheTTL)

	m := metrics.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, store, listCache, m, cfg)

	// Schedule recurring jobs
	svcs.Job.Schedule()

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, svcs, m, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// pending audit writes drain here
	worker.Shutdown()
	logger.Info("Background worker stopped")

	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			logger.Warn("Failed to close Redis", "error", err)
		}
	}

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, svcs *services.Services, m *metrics.Metrics, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.NoRoute(handlers.NotFound)

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret, svcs.User))
		{
			protected.GET("/me", h.User.Me)

			// Lookup tables
			registerReference(protected, "/suppliers", h.Supplier)
			registerReference(protected, "/banks", h.Bank)
			registerReference(protected, "/document_types", h.DocumentType)
			registerReference(protected, "/cost_centers", h.CostCenter)
			registerReference(protected, "/installments", h.Installment)
			registerReference(protected, "/statuses", h.Status)

			// Ledger; static paths before :id
			payables := protected.Group("/payables")
			{
				payables.GET("", h.Payable.Index)
				payables.POST("", h.Payable.Create)
				payables.POST("/import", h.Payable.Import)
				payables.GET("/export", h.Payable.Export)
				payables.GET("/:id", h.Payable.Show)
				payables.PUT("/:id", h.Payable.Update)
				payables.PATCH("/:id/status", h.Payable.UpdateStatus)
				payables.DELETE("/:id", h.Payable.Delete)
			}

			reports := protected.Group("/reports")
			{
				reports.GET("/dashboard", h.Report.Dashboard)
				reports.GET("/daily", h.Report.Daily)
				reports.GET("/daily/pdf", h.Report.DailyPDF)
				reports.GET("/weekly", h.Report.Weekly)
				reports.GET("/weekly/pdf", h.Report.WeeklyPDF)
				reports.GET("/suppliers", h.Report.Suppliers)
				reports.GET("/group", h.Report.Group)
			}

			utils := protected.Group("/utils")
			{
				utils.GET("/add_days", h.Utils.AddDays)
				utils.GET("/count_days", h.Utils.CountDays)
				utils.POST("/term_schedule", h.Utils.TermSchedule)
				utils.POST("/calculate", h.Utils.Calculate)
			}

			protected.GET("/audits", h.Audit.Index)

			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", h.User.Index)
				admin.GET("/jobs/status", h.Job.Status)
			}
		}
	}

	return router
}

func registerReference[T models.Reference](g *gin.RouterGroup, path string, h *handlers.ReferenceHandler[T]) {
	g.GET(path, h.Index)
	g.GET(path+"/:id", h.Show)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
