// Command trackd runs the visitor and lead collection service.
//
// It exposes the collection API under /track and forwards accepted records
// to an optional downstream backend. Storage is file based by default and
// switches to Redis via STORAGE_DRIVER=redis.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trackkit/trackkit/modules/lead"
	"github.com/trackkit/trackkit/modules/visitor"
	"github.com/trackkit/trackkit/pkg/boundedstore"
	"github.com/trackkit/trackkit/pkg/config"
	"github.com/trackkit/trackkit/pkg/forward"
	"github.com/trackkit/trackkit/pkg/geolocate"
	"github.com/trackkit/trackkit/pkg/httpserver"
	"github.com/trackkit/trackkit/pkg/logger"
	"github.com/trackkit/trackkit/pkg/redis"
	"github.com/trackkit/trackkit/pkg/requestid"
)

type appConfig struct {
	Name string `env:"APP_NAME" envDefault:"trackd"`
	Env  string `env:"APP_ENV" envDefault:"development"`
}

type storageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"file"` // file or redis
	BaseDir     string `env:"STORAGE_DIR" envDefault:"./data"`
	RedisPrefix string `env:"STORAGE_REDIS_PREFIX" envDefault:"trackkit"`
}

type forwardConfig struct {
	BaseURL string        `env:"FORWARD_BASE_URL"` // empty disables forwarding
	Timeout time.Duration `env:"FORWARD_TIMEOUT" envDefault:"10s"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		storageCfg storageConfig
		forwardCfg forwardConfig
		httpCfg    httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&storageCfg)
	config.MustLoad(&forwardCfg)
	config.MustLoad(&httpCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	backend, readyChecks, err := newBackend(ctx, storageCfg)
	if err != nil {
		return fmt.Errorf("storage backend: %w", err)
	}

	visitorStore, err := boundedstore.NewList[visitor.Record](backend, visitor.StorageKey, visitor.MaxRecords)
	if err != nil {
		return fmt.Errorf("visitor store: %w", err)
	}
	leadStore, err := boundedstore.NewList[lead.Record](backend, lead.StorageKey, lead.MaxRecords)
	if err != nil {
		return fmt.Errorf("lead store: %w", err)
	}

	sink, err := newSink(forwardCfg)
	if err != nil {
		return fmt.Errorf("forwarding sink: %w", err)
	}

	resolver := geolocate.New(geolocate.WithLogger(log))
	visitorSvc := visitor.NewService(resolver, visitorStore, sink, visitor.WithLogger(log))
	leadSvc := lead.NewService(leadStore, sink, lead.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, readyChecks...))
	r.Route("/track", func(r chi.Router) {
		r.Mount("/visitors", visitor.Router(visitorSvc))
		r.Mount("/leads", lead.Router(leadSvc))
	})

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

// newBackend selects the bounded-list backend from configuration and returns
// it together with readiness checks for its dependencies.
func newBackend(ctx context.Context, cfg storageConfig) (boundedstore.Backend, []func(context.Context) error, error) {
	switch cfg.Driver {
	case "redis":
		var redisCfg redis.Config
		config.MustLoad(&redisCfg)

		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		backend, err := boundedstore.NewRedisBackend(client, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return backend, []func(context.Context) error{redis.Healthcheck(client)}, nil
	case "file":
		backend, err := boundedstore.NewFileBackend(cfg.BaseDir)
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// newSink builds the forwarding sink. Without a configured base URL records
// are only stored locally.
func newSink(cfg forwardConfig) (forward.Sink, error) {
	if cfg.BaseURL == "" {
		return forward.NoopSink{}, nil
	}
	return forward.NewHTTPSink(cfg.BaseURL, forward.WithTimeout(cfg.Timeout))
}
