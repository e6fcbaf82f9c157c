package usecase

import (
	"time"

	"resource-api/internal/resource"
	"resource-api/internal/resource/repository"
	"resource-api/pkg/log"
)

// implUseCase is the private implementation of resource.UseCase.
type implUseCase[E any, P resource.EntityPtr[E]] struct {
	repo repository.Repository[E]
	opts resource.Options
	l    log.Logger
	now  func() time.Time
}

// New creates a UseCase for E over repo.
func New[E any, P resource.EntityPtr[E]](repo repository.Repository[E], opts resource.Options, l log.Logger) resource.UseCase[E] {
	return &implUseCase[E, P]{
		repo: repo,
		opts: opts,
		l:    l,
		now:  time.Now,
	}
}
