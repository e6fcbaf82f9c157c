package app

import (
	"resource-api/internal/resource"
	resthttp "resource-api/internal/resource/delivery/http"
	"resource-api/internal/resource/repository"
	"resource-api/internal/resource/repository/cached"
	"resource-api/internal/resource/repository/memory"
	"resource-api/internal/resource/repository/postgre"
	"resource-api/internal/resource/usecase"
	"resource-api/pkg/container"
)

// provideResource registers repository, use case and handler singletons for
// one resource. The repository is Postgres-backed when a database is
// configured, in-memory otherwise, and read-through cached when a cache is.
func provideResource[E any, P resource.EntityPtr[E]](c *container.Container, keys ResourceKeys[E], opts resource.Options, res resthttp.Resource[E]) error {
	err := container.Provide(c, keys.Repository, container.Singleton, func(r container.Resolver) (repository.Repository[E], error) {
		l, err := container.Resolve(r, LoggerKey)
		if err != nil {
			return nil, err
		}
		db, err := container.Resolve(r, DatabaseKey)
		if err != nil {
			return nil, err
		}
		cc, err := container.Resolve(r, CacheKey)
		if err != nil {
			return nil, err
		}

		var repo repository.Repository[E]
		if db != nil {
			repo = postgre.New[E](db, l, opts.Name)
		} else {
			repo, err = memory.New[E, P]()
			if err != nil {
				return nil, err
			}
		}
		if cc != nil {
			repo = cached.New(repo, cc, l, opts.Name)
		}
		return repo, nil
	}, nil)
	if err != nil {
		return err
	}

	err = container.Provide(c, keys.UseCase, container.Singleton, func(r container.Resolver) (resource.UseCase[E], error) {
		l, err := container.Resolve(r, LoggerKey)
		if err != nil {
			return nil, err
		}
		repo, err := container.Resolve(r, keys.Repository)
		if err != nil {
			return nil, err
		}
		return usecase.New[E, P](repo, opts, l), nil
	}, nil)
	if err != nil {
		return err
	}

	return container.Provide(c, keys.Handler, container.Singleton, func(r container.Resolver) (*resthttp.Handler[E], error) {
		l, err := container.Resolve(r, LoggerKey)
		if err != nil {
			return nil, err
		}
		cfg, err := container.Resolve(r, ConfigKey)
		if err != nil {
			return nil, err
		}
		uc, err := container.Resolve(r, keys.UseCase)
		if err != nil {
			return nil, err
		}
		return resthttp.New(l, uc, res, resthttp.Config{
			Environment:  cfg.Environment.Name,
			DefaultLimit: cfg.Pagination.DefaultLimit,
			MaxLimit:     cfg.Pagination.MaxLimit,
		}), nil
	}, nil)
}
