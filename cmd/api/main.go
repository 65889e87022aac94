package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dealcheck/contract-audit/internal/application"
	appanalysis "github.com/dealcheck/contract-audit/internal/application/analysis"
	"github.com/dealcheck/contract-audit/internal/config"
	domain "github.com/dealcheck/contract-audit/internal/domain/analysis"
	aiclient "github.com/dealcheck/contract-audit/internal/infra/ai/openai"
	"github.com/dealcheck/contract-audit/internal/infra/ai/prompt"
	mysqlp "github.com/dealcheck/contract-audit/internal/infra/db/mysql"
	postgresp "github.com/dealcheck/contract-audit/internal/infra/db/postgres"
	"github.com/dealcheck/contract-audit/internal/infra/httpserver"
	minioStore "github.com/dealcheck/contract-audit/internal/infra/storage"
	"github.com/dealcheck/contract-audit/internal/middleware"
	"github.com/dealcheck/contract-audit/internal/observability/logging"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger("contract-audit-api", cfg.LogLevel)
	ctx := context.Background()

	// connect database (driver per config)
	var (
		db          *sql.DB
		repo        domain.Repository
		failureRepo domain.FailureRepository
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			logger.Error("postgres connect error", "err", err)
			os.Exit(1)
		}
		repo = postgresp.NewAnalysisRepository(db)
		failureRepo = postgresp.NewFailureRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			logger.Error("mysql connect error", "err", err)
			os.Exit(1)
		}
		repo = mysqlp.NewAnalysisRepository(db)
		failureRepo = mysqlp.NewFailureRepository(db)
	}
	defer db.Close()

	// init minio artifact store
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logger.Error("minio init error", "err", err)
		os.Exit(1)
	}

	// init model client
	client := aiclient.NewClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)

	// init service
	svc := appanalysis.NewService(
		client,
		repo,
		failureRepo,
		store,
		application.SystemClock{},
		logger,
		prompt.Auditor(),
	)

	metrics := middleware.NewMetrics("contract-audit-api")
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.Logging(logger))
	mux.Use(metrics.Middleware("contract-audit-api"))
	if len(cfg.Auth.APIKeys) > 0 {
		mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	}
	mux.Use(middleware.RateLimitMiddleware(limiter))

	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}))
	mux.Method(http.MethodGet, "/metrics", metrics.Handler())
	mux.Mount("/", httpserver.NewRouter(svc, metrics))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
