package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "news-portal/docs" // swagger docs
	"news-portal/internal/config"
	"news-portal/internal/domain/entity"
	memRepo "news-portal/internal/infra/adapter/persistence/memory"
	mongoRepo "news-portal/internal/infra/adapter/persistence/mongodb"
	pgRepo "news-portal/internal/infra/adapter/persistence/postgres"
	"news-portal/internal/infra/db"
	"news-portal/internal/infra/imageenc"
	"news-portal/internal/infra/sanitizer"
	"news-portal/internal/observability/logging"
	"news-portal/internal/observability/tracing"
	"news-portal/internal/repository"
	"news-portal/internal/resilience/circuitbreaker"

	artUC "news-portal/internal/usecase/article"

	hhttp "news-portal/internal/handler/http"
	harticle "news-portal/internal/handler/http/article"
	hauth "news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/middleware"
	"news-portal/internal/handler/http/requestid"
	"news-portal/pkg/security/csp"
)

// @title        News Portal API
// @version      1.0
// @description  News article management. Every route is also served under /api/news.
//
// @contact.name  API Support
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT in the form "Bearer {token}".
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		ServiceName:    "news-portal",
		ServiceVersion: cfg.Version,
		Environment:    cfg.Tracing.Environment,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	store, closeStore, err := initStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store",
			slog.String("driver", cfg.Store.Driver),
			slog.Any("error", err))
		os.Exit(1)
	}

	handler := setupServer(cfg, logger, store)
	runServer(ctx, cfg, logger, handler)

	if err := closeStore(); err != nil {
		logger.Error("failed to close store", slog.Any("error", err))
	}
	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("failed to flush traces", slog.Any("error", err))
	}
}

// initLogger builds the JSON logger at the configured level and installs it
// as the process default.
func initLogger(cfg config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

// initStore opens the configured backend and wraps it in the store circuit
// breaker. The returned func releases the connection.
func initStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*circuitbreaker.ArticleRepository, func() error, error) {
	var (
		repo    repository.ArticleRepository
		closeFn = func() error { return nil }
	)

	switch cfg.Store.Driver {
	case config.DriverMongo:
		database, err := db.OpenMongo(ctx, cfg.Mongo())
		if err != nil {
			return nil, nil, err
		}
		repo = mongoRepo.NewArticleRepo(database)
		closeFn = func() error { return database.Client().Disconnect(context.Background()) }

	case config.DriverPostgres:
		database, err := db.Open(ctx, cfg.Store.Postgres.URL, cfg.Pool())
		if err != nil {
			return nil, nil, err
		}
		if err := db.MigrateUp(ctx, database); err != nil {
			_ = database.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		repo = pgRepo.NewArticleRepo(database)
		closeFn = database.Close

	case config.DriverMemory:
		mem := memRepo.NewArticleRepo()
		for id, name := range cfg.Store.Memory.Categories {
			mem.PutCategory(entity.Category{ID: id, Name: name})
		}
		logger.Warn("using the in-memory store; data is lost on restart",
			slog.Int("categories", len(cfg.Store.Memory.Categories)))
		repo = mem

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	logger.Info("store ready", slog.String("driver", cfg.Store.Driver))
	return circuitbreaker.NewArticleRepository(repo, circuitbreaker.StoreConfig()), closeFn, nil
}

// setupServer builds the news service, registers every route and wraps the
// mux in the middleware chain.
func setupServer(cfg config.Config, logger *slog.Logger, store *circuitbreaker.ArticleRepository) http.Handler {
	svc := &artUC.Service{
		Repo:       store,
		Images:     imageenc.New(cfg.News.MaxUploadBytes),
		Pagination: cfg.Pagination(),
	}
	if cfg.News.SanitizeContent {
		svc.Sanitizer = sanitizer.NewHTML()
		logger.Info("article content sanitization enabled")
	}

	var protect func(http.Handler) http.Handler
	if cfg.Auth.JWTSecret != "" {
		protect = hauth.Guard([]byte(cfg.Auth.JWTSecret), logger)
		logger.Info("write routes require a bearer token")
	} else {
		logger.Warn("NEWS_JWT_SECRET is not set - write routes are open")
	}

	mux := http.NewServeMux()
	harticle.Register(mux, svc, harticle.Options{
		Pagination:     cfg.Pagination(),
		MaxUploadBytes: cfg.News.MaxUploadBytes,
		Logger:         logger,
		Protect:        protect,
	})

	mux.Handle("GET /health", &hhttp.HealthHandler{Store: store, Breaker: store.Breaker(), Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: store})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(cfg, logger, mux)
}

// applyMiddleware wraps handler, outermost first: request ID, tracing,
// access log, metrics, CORS, security headers, input checks, body limit,
// timeout, recovery. Recovery sits innermost so the access log and metrics
// see the 500.
func applyMiddleware(cfg config.Config, logger *slog.Logger, handler http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
	}

	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsCfg := middleware.DefaultCORSConfig(cfg.HTTP.CORSOrigins)
		corsCfg.Logger = logger
		mws = append(mws, middleware.CORS(corsCfg))
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsCfg.AllowedOrigins),
			slog.Any("allowed_methods", corsCfg.AllowedMethods),
			slog.Int("max_age", corsCfg.MaxAge))
	}

	mws = append(mws,
		middleware.SecurityHeadersByPath(nil, map[string]*csp.Policy{
			"/swagger/": csp.SwaggerUI(),
		}),
		hhttp.InputValidation(),
		// multipart framing and text fields ride on top of the image
		hhttp.LimitRequestBody(cfg.News.MaxUploadBytes+1<<20),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.Recover(logger),
	)
	return hhttp.Chain(handler, mws...)
}

// runServer serves until ctx is cancelled, then drains in-flight requests.
func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.Any("error", err))
			return
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
