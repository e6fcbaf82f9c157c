package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
	"resource-api/internal/resource/repository/memory"
	"resource-api/pkg/log"
	"resource-api/pkg/paginator"
)

type item struct {
	resource.Model
	Title string `gorm:"column:title"`
	Stock int    `gorm:"column:stock"`
}

// itemPatch mirrors how resource packages express partial updates.
type itemPatch struct {
	Title *string
	Stock *int
}

func (p itemPatch) Apply(e *item) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Stock != nil {
		e.Stock = *p.Stock
	}
}

func (p itemPatch) Fields() resource.Fields {
	f := resource.Fields{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Stock != nil {
		f["stock"] = *p.Stock
	}
	return f
}

var itemOptions = resource.Options{
	Name:            "item",
	SortableColumns: []string{"title", "stock", "created_at"},
	DefaultSort:     resource.SortField{Column: "created_at"},
}

// stubRepo lets a test force storage outcomes the memory repository never produces.
type stubRepo struct {
	repo.Repository[item]
	updateAffected int64
	deleteAffected int64
	err            error
}

func (s *stubRepo) Update(ctx context.Context, id string, f resource.Fields) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.updateAffected, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.deleteAffected, nil
}

type frozenClock struct {
	t time.Time
}

func (c *frozenClock) now() time.Time { return c.t }

func newUseCase(t *testing.T, r repo.Repository[item], clock *frozenClock) resource.UseCase[item] {
	t.Helper()
	uc := New[item](r, itemOptions, log.NewNop())
	if clock != nil {
		uc.(*implUseCase[item, *item]).now = clock.now
	}
	return uc
}

func newMemoryRepo(t *testing.T) repo.Repository[item] {
	t.Helper()
	r, err := memory.New[item]()
	require.NoError(t, err)
	return r
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	clock := &frozenClock{t: time.Date(2026, 4, 1, 12, 0, 0, 123456789, time.UTC)}
	r := newMemoryRepo(t)
	uc := newUseCase(t, r, clock)

	created, err := uc.Create(ctx, item{Model: resource.Model{ID: "client-chosen"}, Title: "Dune"})
	require.NoError(t, err)

	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "client-chosen", created.ID)
	assert.Equal(t, clock.t.Truncate(time.Microsecond), created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	stored, err := uc.Detail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestDetail_NotFound(t *testing.T) {
	uc := newUseCase(t, newMemoryRepo(t), nil)

	_, err := uc.Detail(context.Background(), "missing")
	require.ErrorIs(t, err, resource.ErrNotFound)
	assert.Contains(t, err.Error(), "item")
}

func TestList(t *testing.T) {
	ctx := context.Background()
	clock := &frozenClock{t: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}
	uc := newUseCase(t, newMemoryRepo(t), clock)
	for i := range 25 {
		clock.t = clock.t.Add(time.Second)
		_, err := uc.Create(ctx, item{Title: fmt.Sprintf("t%02d", i), Stock: i % 2})
		require.NoError(t, err)
	}

	t.Run("last partial page", func(t *testing.T) {
		res, err := uc.List(ctx, resource.ListInput{Pagination: paginator.Params{Page: 3, Limit: 10}})
		require.NoError(t, err)
		assert.Len(t, res.Data, 5)
		assert.EqualValues(t, 25, res.Total)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, 3, res.Page)
		assert.Equal(t, 10, res.Limit)
		assert.Equal(t, "t20", res.Data[0].Title)
	})

	t.Run("non-positive paging clamps", func(t *testing.T) {
		res, err := uc.List(ctx, resource.ListInput{Pagination: paginator.Params{Page: 0, Limit: 0}})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 1, res.Limit)
		assert.Len(t, res.Data, 1)
		assert.Equal(t, 25, res.TotalPages)
	})

	t.Run("filters and descending sort", func(t *testing.T) {
		res, err := uc.List(ctx, resource.ListInput{
			Pagination: paginator.Params{Page: 1, Limit: 3},
			Filters:    resource.Filters{"stock": 1},
			Sort:       "-title",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 12, res.Total)
		require.Len(t, res.Data, 3)
		assert.Equal(t, "t23", res.Data[0].Title)
	})

	t.Run("sort outside allow-list", func(t *testing.T) {
		_, err := uc.List(ctx, resource.ListInput{Pagination: paginator.Params{Page: 1, Limit: 3}, Sort: "id"})
		assert.ErrorIs(t, err, resource.ErrInvalidSort)
	})

	t.Run("empty result", func(t *testing.T) {
		res, err := uc.List(ctx, resource.ListInput{
			Pagination: paginator.Params{Page: 1, Limit: 10},
			Filters:    resource.Filters{"title": "nothing"},
		})
		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.Zero(t, res.Total)
		assert.Zero(t, res.TotalPages)
	})
}

func TestUpdate_PresenceBasedMerge(t *testing.T) {
	ctx := context.Background()
	clock := &frozenClock{t: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}
	uc := newUseCase(t, newMemoryRepo(t), clock)
	created, err := uc.Create(ctx, item{Title: "Dune", Stock: 4})
	require.NoError(t, err)

	// Same instant: UpdatedAt must still move forward.
	updated, err := uc.Update(ctx, created.ID, itemPatch{Stock: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	stored, err := uc.Detail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	clock.t = clock.t.Add(time.Hour)
	again, err := uc.Update(ctx, created.ID, itemPatch{Title: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "", again.Title)
	assert.Equal(t, clock.t, again.UpdatedAt)
}

func TestUpdate_EmptyPatchOnlyAdvancesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	clock := &frozenClock{t: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)}
	uc := newUseCase(t, newMemoryRepo(t), clock)
	created, err := uc.Create(ctx, item{Title: "Dune", Stock: 4})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, itemPatch{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, updated)
}

func TestUpdate_NotFound(t *testing.T) {
	uc := newUseCase(t, newMemoryRepo(t), nil)
	_, err := uc.Update(context.Background(), "missing", itemPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestUpdateDelete_ConcurrentModification(t *testing.T) {
	ctx := context.Background()
	base := newMemoryRepo(t)
	seeded, err := newUseCase(t, base, nil).Create(ctx, item{Title: "Dune"})
	require.NoError(t, err)

	uc := newUseCase(t, &stubRepo{Repository: base}, nil)

	_, err = uc.Update(ctx, seeded.ID, itemPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, resource.ErrConcurrentModification)

	err = uc.Delete(ctx, seeded.ID)
	assert.ErrorIs(t, err, resource.ErrConcurrentModification)
}

func TestUpdateDelete_StorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	base := newMemoryRepo(t)
	seeded, err := newUseCase(t, base, nil).Create(ctx, item{Title: "Dune"})
	require.NoError(t, err)

	boom := errors.New("disk full")
	uc := newUseCase(t, &stubRepo{Repository: base, err: boom}, nil)

	_, err = uc.Update(ctx, seeded.ID, itemPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, uc.Delete(ctx, seeded.ID), boom)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, newMemoryRepo(t), nil)
	created, err := uc.Create(ctx, item{Title: "Dune"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.Detail(ctx, created.ID)
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), resource.ErrNotFound)
}
