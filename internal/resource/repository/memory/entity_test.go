package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"resource-api/internal/resource"
	repo "resource-api/internal/resource/repository"
)

type gadget struct {
	resource.Model
	Name  string `gorm:"column:name"`
	Kind  string `gorm:"column:kind"`
	Year  int    `gorm:"column:year"`
	Price float64
}

func newGadgetRepo(t *testing.T) repo.Repository[gadget] {
	t.Helper()
	r, err := New[gadget]()
	require.NoError(t, err)
	return r
}

func seed(t *testing.T, r repo.Repository[gadget], items ...gadget) {
	t.Helper()
	for _, it := range items {
		_, err := r.Insert(context.Background(), it)
		require.NoError(t, err)
	}
}

func g(id, name, kind string, year int) gadget {
	return gadget{Model: resource.Model{ID: id}, Name: name, Kind: kind, Year: year}
}

func ids(items []gadget) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestInsertAndFind(t *testing.T) {
	ctx := context.Background()
	r := newGadgetRepo(t)
	seed(t, r, g("a", "lamp", "light", 2001))

	got, ok, err := r.FindByID(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "lamp", got.Name)

	_, ok, err = r.FindByID(ctx, "zz")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.Insert(ctx, g("a", "dup", "light", 2001))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFindAllWithCount(t *testing.T) {
	ctx := context.Background()
	r := newGadgetRepo(t)
	seed(t, r,
		g("1", "lamp", "light", 2003),
		g("2", "fan", "air", 2001),
		g("3", "bulb", "light", 2002),
		g("4", "heater", "air", 2001),
		g("5", "torch", "light", 2004),
	)

	t.Run("insertion order without sort", func(t *testing.T) {
		items, total, err := r.FindAllWithCount(ctx, repo.ListOptions{Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(items))
	})

	t.Run("filter and window", func(t *testing.T) {
		items, total, err := r.FindAllWithCount(ctx, repo.ListOptions{
			Filters: resource.Filters{"kind": "light"},
			Offset:  1,
			Limit:   1,
			Sort:    resource.SortField{Column: "name"},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Equal(t, []string{"1"}, ids(items))
	})

	t.Run("string filter against int column", func(t *testing.T) {
		items, total, err := r.FindAllWithCount(ctx, repo.ListOptions{
			Filters: resource.Filters{"year": "2001"},
			Limit:   10,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, []string{"2", "4"}, ids(items))
	})

	t.Run("descending numeric sort with id tiebreak", func(t *testing.T) {
		items, _, err := r.FindAllWithCount(ctx, repo.ListOptions{
			Limit: 10,
			Sort:  resource.SortField{Column: "year", Desc: true},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"5", "1", "3", "2", "4"}, ids(items))
	})

	t.Run("offset past end", func(t *testing.T) {
		items, total, err := r.FindAllWithCount(ctx, repo.ListOptions{Offset: 50, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Empty(t, items)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, _, err := r.FindAllWithCount(ctx, repo.ListOptions{Filters: resource.Filters{"nope": 1}})
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	r := newGadgetRepo(t)
	seed(t, r, g("a", "lamp", "light", 2001))
	stamp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	n, err := r.Update(ctx, "a", resource.Fields{"name": "", "year": 1999, "updated_at": stamp, "id": "hijack"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, ok, err := r.FindByID(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, 1999, got.Year)
	assert.Equal(t, "light", got.Kind)
	assert.True(t, got.UpdatedAt.Equal(stamp))

	n, err = r.Update(ctx, "missing", resource.Fields{"name": "x"})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = r.Update(ctx, "a", resource.Fields{"nope": "x"})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := newGadgetRepo(t)
	seed(t, r, g("a", "lamp", "light", 2001), g("b", "fan", "air", 2002))

	n, err := r.Delete(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = r.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, n)

	items, total, err := r.FindAllWithCount(ctx, repo.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{"b"}, ids(items))
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := newGadgetRepo(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := string(rune('A' + i))
			_, err := r.Insert(ctx, g(id, "n", "k", i))
			assert.NoError(t, err)
			_, _, err = r.FindAllWithCount(ctx, repo.ListOptions{Limit: 5})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, total, err := r.FindAllWithCount(ctx, repo.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 50, total)
}
