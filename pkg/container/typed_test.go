package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter struct {
	name   string
	closed bool
}

func TestTypedKeys(t *testing.T) {
	nameKey := NewKey[string]("name")
	greeterKey := NewKey[*greeter]("greeter")

	c := New(nil)
	require.NoError(t, Provide(c, nameKey, Singleton, func(Resolver) (string, error) {
		return "gopher", nil
	}, nil))
	require.NoError(t, Provide(c, greeterKey, Singleton, func(r Resolver) (*greeter, error) {
		name, err := Resolve(r, nameKey)
		if err != nil {
			return nil, err
		}
		return &greeter{name: name}, nil
	}, func(_ context.Context, g *greeter) error {
		g.closed = true
		return nil
	}))

	g, err := Resolve(c, greeterKey)
	require.NoError(t, err)
	assert.Equal(t, "gopher", g.name)
	assert.Same(t, g, MustResolve(c, greeterKey))

	require.NoError(t, c.DisposeAll(context.Background()))
	assert.True(t, g.closed)
}

func TestResolve_TypeMismatch(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Register(Registration{
		Name:     "n",
		Lifetime: Singleton,
		Factory:  func(Resolver) (any, error) { return 42, nil },
	}))

	_, err := Resolve(c, NewKey[string]("n"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Panics(t, func() { MustResolve(c, NewKey[string]("n")) })
}

type closer interface{ Close() error }

func TestProvide_AbsentOptionalComponent(t *testing.T) {
	key := NewKey[closer]("optional")
	called := false

	c := New(nil)
	require.NoError(t, Provide(c, key, Singleton, func(Resolver) (closer, error) {
		return nil, nil
	}, func(context.Context, closer) error {
		called = true
		return nil
	}))

	v, err := Resolve(c, key)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, c.DisposeAll(context.Background()))
	assert.False(t, called)
}
