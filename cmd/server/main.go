// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-library-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/instrumented"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/redisstore"
	"github.com/jsamuelsen11/go-library-service/internal/adapters/store/seed"

	"github.com/jsamuelsen11/go-library-service/internal/app"
	"github.com/jsamuelsen11/go-library-service/internal/app/resolve"
	"github.com/jsamuelsen11/go-library-service/internal/domain/book"
	"github.com/jsamuelsen11/go-library-service/internal/domain/person"
	"github.com/jsamuelsen11/go-library-service/internal/platform/config"
	"github.com/jsamuelsen11/go-library-service/internal/platform/health"
	"github.com/jsamuelsen11/go-library-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-library-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-library-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	stores := do.MustInvoke[*backend](injector)
	for _, checker := range stores.checkers {
		registry.Register(checker)
	}

	if cfg.Library.Seed {
		if err := seedStores(ctx, cfg.Library, stores, logger); err != nil {
			_ = stores.Close()
			return err
		}
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = stores.Close()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := stores.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// backend bundles the record stores with their health checkers and the
// connection they share. client is nil for the memory driver.
type backend struct {
	books    ports.Store[book.Book]
	persons  ports.Store[person.Person]
	checkers []ports.HealthChecker
	client   *redis.Client
}

// Close releases the Redis connection pool, if any.
func (b *backend) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}

func newBackend(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) *backend {
	b := &backend{}

	switch cfg.Store.Driver {
	case config.DriverRedis:
		b.client = redisstore.NewClient(&cfg.Store.Redis)
		books := redisstore.New[book.Book](b.client, "book", &cfg.Store.Redis, logger)
		persons := redisstore.New[person.Person](b.client, "person", &cfg.Store.Redis, logger)
		b.books, b.persons = books, persons
		b.checkers = []ports.HealthChecker{books, persons}
	default:
		b.books = memory.New[book.Book]()
		b.persons = memory.New[person.Person]()
	}

	b.books = instrumented.Wrap(b.books, "book", metrics)
	b.persons = instrumented.Wrap(b.persons, "person", metrics)

	logger.Info("record store ready", slog.String("driver", cfg.Store.Driver))
	return b
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*backend, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newBackend(cfg, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LibraryService, error) {
		stores := do.MustInvoke[*backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewLibraryService(stores.books, stores.persons, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*resolve.Resolver, error) {
		stores := do.MustInvoke[*backend](i)
		return resolve.NewResolver(stores.books, stores.persons, cfg.Library.ResolveWorkers, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BookHandler, error) {
		svc := do.MustInvoke[ports.LibraryService](i)
		resolver := do.MustInvoke[*resolve.Resolver](i)
		return handlers.NewBookHandler(svc, resolver), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PersonHandler, error) {
		svc := do.MustInvoke[ports.LibraryService](i)
		resolver := do.MustInvoke[*resolve.Resolver](i)
		return handlers.NewPersonHandler(svc, resolver), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.LendingHandler, error) {
		svc := do.MustInvoke[ports.LibraryService](i)
		resolver := do.MustInvoke[*resolve.Resolver](i)
		return handlers.NewLendingHandler(svc, resolver), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		bookH := do.MustInvoke[*handlers.BookHandler](i)
		personH := do.MustInvoke[*handlers.PersonHandler](i)
		lendingH := do.MustInvoke[*handlers.LendingHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := middleware.Stack(middleware.StackConfig{
			Logger:         logger,
			Metrics:        metrics,
			CORS:           cfg.Server.CORS,
			RateLimit:      cfg.Server.RateLimit,
			RequestTimeout: cfg.Server.RequestTimeout,
		})
		return adapthttp.NewRouter(bookH, personH, lendingH, healthH, stack...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// seedStores loads the configured catalog, or the built-in one when no seed
// file is set.
func seedStores(ctx context.Context, cfg config.LibraryConfig, stores *backend, logger *slog.Logger) error {
	catalog := seed.Default()
	if cfg.SeedFile != "" {
		var err error
		if catalog, err = seed.ReadFile(cfg.SeedFile); err != nil {
			return fmt.Errorf("reading catalog: %w", err)
		}
		logger.Info("catalog read from file", slog.String("path", cfg.SeedFile))
	}
	if err := seed.Load(ctx, stores.books, stores.persons, catalog.Books, catalog.Persons, logger); err != nil {
		return fmt.Errorf("seeding stores: %w", err)
	}
	return nil
}
