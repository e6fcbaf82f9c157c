package cached

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
	"resource-api/internal/resource/repository/memory"
	"resource-api/pkg/cache"
	"resource-api/pkg/log"
)

type note struct {
	resource.Model
	Body string `json:"body"`
}

// countingRepo records how often the store behind the cache is hit.
type countingRepo struct {
	repo.Repository[note]
	finds int
}

func (c *countingRepo) FindByID(ctx context.Context, id string) (note, bool, error) {
	c.finds++
	return c.Repository.FindByID(ctx, id)
}

// gatedRepo pauses the first FindByID after it has read from the store, so a
// write can land between the read and the cache fill.
type gatedRepo struct {
	repo.Repository[note]
	armed   atomic.Bool
	read    chan struct{}
	release chan struct{}
}

func (g *gatedRepo) FindByID(ctx context.Context, id string) (note, bool, error) {
	e, ok, err := g.Repository.FindByID(ctx, id)
	if g.armed.CompareAndSwap(true, false) {
		close(g.read)
		<-g.release
	}
	return e, ok, err
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache down")
}
func (brokenCache) Set(context.Context, string, []byte) error { return errors.New("cache down") }
func (brokenCache) Delete(context.Context, string) error      { return errors.New("cache down") }
func (brokenCache) Close() error                              { return nil }

func setup(t *testing.T, c cache.Cache) (repo.Repository[note], *countingRepo) {
	t.Helper()
	inner, err := memory.New[note]()
	require.NoError(t, err)
	counting := &countingRepo{Repository: inner}
	return New[note](counting, c, log.NewNop(), "note"), counting
}

func TestFindByID_ReadsThrough(t *testing.T) {
	ctx := context.Background()
	r, counting := setup(t, cache.NewMemory(10, time.Minute))
	_, err := r.Insert(ctx, note{Model: resource.Model{ID: "n1"}, Body: "hello"})
	require.NoError(t, err)

	for range 3 {
		got, ok, err := r.FindByID(ctx, "n1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hello", got.Body)
	}
	assert.Equal(t, 1, counting.finds)
}

func TestFindByID_AbsentNotCached(t *testing.T) {
	ctx := context.Background()
	r, counting := setup(t, cache.NewMemory(10, time.Minute))

	for range 2 {
		_, ok, err := r.FindByID(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 2, counting.finds)
}

func TestWritesInvalidate(t *testing.T) {
	ctx := context.Background()
	r, _ := setup(t, cache.NewMemory(10, time.Minute))
	_, err := r.Insert(ctx, note{Model: resource.Model{ID: "n1"}, Body: "v1"})
	require.NoError(t, err)
	_, _, err = r.FindByID(ctx, "n1")
	require.NoError(t, err)

	n, err := r.Update(ctx, "n1", resource.Fields{"body": "v2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, _, err := r.FindByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Body)

	n, err = r.Delete(ctx, "n1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, ok, err := r.FindByID(ctx, "n1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheFailuresIgnored(t *testing.T) {
	ctx := context.Background()
	r, counting := setup(t, brokenCache{})
	_, err := r.Insert(ctx, note{Model: resource.Model{ID: "n1"}, Body: "hello"})
	require.NoError(t, err)

	got, ok, err := r.FindByID(ctx, "n1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Body)

	_, err = r.Update(ctx, "n1", resource.Fields{"body": "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, counting.finds)
}

func TestFindByID_WriteDuringReadNotCached(t *testing.T) {
	writes := map[string]func(ctx context.Context, r repo.Repository[note]) (int64, error){
		"delete": func(ctx context.Context, r repo.Repository[note]) (int64, error) {
			return r.Delete(ctx, "n1")
		},
		"update": func(ctx context.Context, r repo.Repository[note]) (int64, error) {
			return r.Update(ctx, "n1", resource.Fields{"body": "v2"})
		},
	}
	for name, write := range writes {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			inner, err := memory.New[note]()
			require.NoError(t, err)
			gated := &gatedRepo{Repository: inner, read: make(chan struct{}), release: make(chan struct{})}
			r := New[note](gated, cache.NewMemory(10, time.Minute), log.NewNop(), "note")

			_, err = r.Insert(ctx, note{Model: resource.Model{ID: "n1"}, Body: "v1"})
			require.NoError(t, err)

			gated.armed.Store(true)
			done := make(chan note)
			go func() {
				got, _, _ := r.FindByID(ctx, "n1")
				done <- got
			}()
			<-gated.read

			n, err := write(ctx, r)
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)

			close(gated.release)
			assert.Equal(t, "v1", (<-done).Body)

			got, ok, err := r.FindByID(ctx, "n1")
			require.NoError(t, err)
			if name == "delete" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, "v2", got.Body)
		})
	}
}
