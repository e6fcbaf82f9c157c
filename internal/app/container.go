package app

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resource-api/config"
	"resource-api/internal/book"
	bookhttp "resource-api/internal/book/delivery/http"
	"resource-api/internal/httpserver"
	"resource-api/internal/middleware"
	"resource-api/internal/product"
	producthttp "resource-api/internal/product/delivery/http"
	"resource-api/internal/resource/repository/postgre"
	"resource-api/pkg/cache"
	"resource-api/pkg/container"
	"resource-api/pkg/log"
	"resource-api/pkg/postgres"
	"resource-api/pkg/scope"
)

const metricsNamespace = "resource_api"

// NewContainer registers every component of the service. Nothing is built
// until the first Resolve; call Validate on the result to build everything
// up front.
func NewContainer(cfg *config.Config, l log.Logger) (*container.Container, error) {
	if cfg == nil {
		return nil, errors.New("app.NewContainer: config is required")
	}
	if l == nil {
		return nil, errors.New("app.NewContainer: logger is required")
	}

	c := container.New(l)
	steps := []func(*container.Container) error{
		func(c *container.Container) error { return provideConfig(c, cfg) },
		func(c *container.Container) error { return provideLogger(c, l) },
		provideDatabase,
		provideCache,
		provideTokenManager,
		provideMetrics,
		provideMiddleware,
		func(c *container.Container) error {
			return provideResource(c, BookKeys, book.Options(), bookhttp.Resource())
		},
		func(c *container.Container) error {
			return provideResource(c, ProductKeys, product.Options(), producthttp.Resource())
		},
		provideHTTPServer,
	}
	for _, step := range steps {
		if err := step(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func provideConfig(c *container.Container, cfg *config.Config) error {
	return container.Provide(c, ConfigKey, container.Singleton, func(container.Resolver) (*config.Config, error) {
		return cfg, nil
	}, nil)
}

func provideLogger(c *container.Container, l log.Logger) error {
	return container.Provide(c, LoggerKey, container.Singleton, func(container.Resolver) (log.Logger, error) {
		return l, nil
	}, nil)
}

func provideDatabase(c *container.Container) error {
	return container.Provide(c, DatabaseKey, container.Singleton, func(r container.Resolver) (*gorm.DB, error) {
		cfg, err := container.Resolve(r, ConfigKey)
		if err != nil {
			return nil, err
		}
		l, err := container.Resolve(r, LoggerKey)
		if err != nil {
			return nil, err
		}

		ctx := context.Background()
		if cfg.Postgres.DSN == "" {
			l.Infof(ctx, "postgres.dsn is empty, records are kept in memory")
			return nil, nil
		}

		db, err := postgres.Connect(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		if err := errors.Join(
			postgre.AutoMigrate[book.Book](db),
			postgre.AutoMigrate[product.Product](db),
		); err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		l.Infof(ctx, "Connected to PostgreSQL")
		return db, nil
	}, func(_ context.Context, db *gorm.DB) error {
		if db == nil {
			return nil
		}
		return postgres.Close(db)
	})
}

func provideCache(c *container.Container) error {
	return container.Provide(c, CacheKey, container.Singleton, func(r container.Resolver) (cache.Cache, error) {
		cfg, err := container.Resolve(r, ConfigKey)
		if err != nil {
			return nil, err
		}

		switch cfg.Cache.Driver {
		case cache.DriverMemory:
			return cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL), nil
		case cache.DriverRedis:
			return cache.ConnectRedis(context.Background(), cache.RedisConfig{
				Addr:     cfg.Cache.RedisAddr,
				Password: cfg.Cache.RedisPassword,
				DB:       cfg.Cache.RedisDB,
			}, cfg.Cache.TTL)
		default:
			return nil, nil
		}
	}, func(_ context.Context, cc cache.Cache) error {
		return cc.Close()
	})
}

func provideTokenManager(c *container.Container) error {
	return container.Provide(c, TokenManagerKey, container.Singleton, func(r container.Resolver) (scope.Manager, error) {
		cfg, err := container.Resolve(r, ConfigKey)
		if err != nil {
			return nil, err
		}
		return scope.New(cfg.JWT.SecretKey, scope.WithIssuer(cfg.JWT.Issuer), scope.WithTTL(cfg.JWT.TTL))
	}, nil)
}

func provideMetrics(c *container.Container) error {
	return container.Provide(c, MetricsKey, container.Singleton, func(container.Resolver) (*middleware.Metrics, error) {
		return middleware.NewMetrics(metricsNamespace), nil
	}, nil)
}

func provideMiddleware(c *container.Container) error {
	return container.Provide(c, MiddlewareKey, container.Singleton, func(r container.Resolver) (middleware.Middleware, error) {
		cfg, err := container.Resolve(r, ConfigKey)
		if err != nil {
			return middleware.Middleware{}, err
		}
		l, err := container.Resolve(r, LoggerKey)
		if err != nil {
			return middleware.Middleware{}, err
		}
		jwtManager, err := container.Resolve(r, TokenManagerKey)
		if err != nil {
			return middleware.Middleware{}, err
		}
		metrics, err := container.Resolve(r, MetricsKey)
		if err != nil {
			return middleware.Middleware{}, err
		}
		return middleware.New(l, jwtManager, middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RateLimit: middleware.RateLimitConfig{
				Window:     cfg.RateLimit.Window,
				Ceiling:    cfg.RateLimit.Ceiling,
				MaxClients: cfg.RateLimit.MaxClients,
			},
		}, metrics), nil
	}, nil)
}

func provideHTTPServer(c *container.Container) error {
	return container.Provide(c, HTTPServerKey, container.Singleton, func(r container.Resolver) (*httpserver.HTTPServer, error) {
		cfg, err := container.Resolve(r, ConfigKey)
		if err != nil {
			return nil, err
		}
		l, err := container.Resolve(r, LoggerKey)
		if err != nil {
			return nil, err
		}
		db, err := container.Resolve(r, DatabaseKey)
		if err != nil {
			return nil, err
		}
		mw, err := container.Resolve(r, MiddlewareKey)
		if err != nil {
			return nil, err
		}
		metrics, err := container.Resolve(r, MetricsKey)
		if err != nil {
			return nil, err
		}
		books, err := container.Resolve(r, BookKeys.Handler)
		if err != nil {
			return nil, err
		}
		products, err := container.Resolve(r, ProductKeys.Handler)
		if err != nil {
			return nil, err
		}

		var readiness func(ctx context.Context) error
		if db != nil {
			readiness = func(ctx context.Context) error { return postgres.Ping(ctx, db) }
		}

		return httpserver.New(httpserver.Config{
			Logger:         l,
			Port:           cfg.HTTPServer.Port,
			Mode:           cfg.HTTPServer.Mode,
			Environment:    cfg.Environment.Name,
			Middleware:     mw,
			Metrics:        metrics,
			Registrars:     []httpserver.RouteRegistrar{books, products},
			ReadinessCheck: readiness,
		})
	}, func(ctx context.Context, srv *httpserver.HTTPServer) error {
		return srv.Shutdown(ctx)
	})
}
