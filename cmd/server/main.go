// Package main is the entry point for the flight search service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/skysearch/internal/adapters/http"
	"github.com/jsamuelsen11/skysearch/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/skysearch/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/skysearch/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/skysearch/internal/adapters/clients/acl/sky"
	"github.com/jsamuelsen11/skysearch/internal/app"
	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
	"github.com/jsamuelsen11/skysearch/internal/platform/cache"
	"github.com/jsamuelsen11/skysearch/internal/platform/clock"
	"github.com/jsamuelsen11/skysearch/internal/platform/config"
	"github.com/jsamuelsen11/skysearch/internal/platform/health"
	"github.com/jsamuelsen11/skysearch/internal/platform/httpclient"
	"github.com/jsamuelsen11/skysearch/internal/platform/logging"
	"github.com/jsamuelsen11/skysearch/internal/platform/telemetry"
	"github.com/jsamuelsen11/skysearch/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

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

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, cfg.Client.APIKey)

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
	do.ProvideValue(injector, otel.search)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.SkyClient](injector))
	svc := do.MustInvoke[*app.SearchService](injector)

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
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then background searches.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Error("search service shutdown error", slog.Any("error", err))
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
	search  *telemetry.SearchMetrics
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

	search, err := telemetry.NewSearchMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating search metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
		search:  search,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideValue(injector, clock.Real())

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "sky-scrapper", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.SkyClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		clk := do.MustInvoke[clock.Clock](i)
		market := sky.Market{
			Locale:      cfg.Search.Locale,
			Market:      cfg.Search.Market,
			Currency:    cfg.Search.Currency,
			CountryCode: cfg.Search.CountryCode,
			SortBy:      cfg.Search.SortBy,
		}
		return acl.NewSkyClient(client, market, logger,
			acl.WithAirportCache(cache.New(clk, cfg.Cache.AirportTTL, filter.CloneOptions)),
			acl.WithFlightCache(cache.New(clk, cfg.Cache.FlightTTL, itinerary.CloneAll)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*session.Store, error) {
		skyClient := do.MustInvoke[*acl.SkyClient](i)
		store := session.NewStore(do.MustInvoke[clock.Clock](i), cfg.Search.SessionTTL, logger)
		store.OnSweep(func() {
			if n := skyClient.PurgeExpired(); n > 0 {
				logger.Debug("purged expired cache entries", slog.Int("count", n))
			}
		})
		store.StartJanitor(cfg.Search.JanitorInterval)
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.SearchService, error) {
		skyClient := do.MustInvoke[*acl.SkyClient](i)
		searchCfg := app.SearchConfig{
			DebounceDelay: cfg.Search.DebounceDelay,
			TimeLayout:    cfg.Search.TimeLayout,
			Defaults: filter.Defaults{
				TripMode:   filter.TripMode(cfg.Search.TripMode),
				CabinClass: filter.CabinClass(cfg.Search.CabinClass),
			},
			MinAdults:     cfg.Search.MinAdults,
			LookupTimeout: cfg.Search.LookupTimeout,
			SearchTimeout: cfg.Search.SearchTimeout,
		}

		var opts []app.Option
		if m := do.MustInvoke[*telemetry.SearchMetrics](i); m != nil {
			opts = append(opts, app.WithMetrics(m))
		}

		return app.NewSearchService(
			do.MustInvoke[*session.Store](i),
			skyClient, skyClient,
			do.MustInvoke[clock.Clock](i),
			searchCfg, logger, opts...,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SessionHandler, error) {
		svc := do.MustInvoke[*app.SearchService](i)
		return handlers.NewSessionHandler(svc), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.CatalogHandler, error) {
		return handlers.NewCatalogHandler(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		store := do.MustInvoke[*session.Store](i)
		return handlers.NewHealthHandler(registry, handlers.WithSessionCount(store.Len)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		sessionH := do.MustInvoke[*handlers.SessionHandler](i)
		catalogH := do.MustInvoke[*handlers.CatalogHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := middleware.Chain(
			middleware.Recovery(logger),
			middleware.CORS(cfg.Server.CORS),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		)
		return adapthttp.NewRouter(sessionH, catalogH, healthH, stack), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
