package container

import (
	"context"
	"fmt"
)

// Key is a typed component identifier. Resolving a Key yields a T without
// call-site type assertions.
type Key[T any] struct {
	name string
}

// NewKey declares a component identifier for T.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the registration name behind k.
func (k Key[T]) Name() string {
	return k.name
}

// Provide registers a typed factory under key. disposer may be nil.
func Provide[T any](c *Container, key Key[T], lifetime Lifetime, factory func(r Resolver) (T, error), disposer func(ctx context.Context, instance T) error) error {
	if factory == nil {
		return fmt.Errorf("%w: %q has no factory", ErrInvalidRegistration, key.name)
	}
	reg := Registration{
		Name:     key.name,
		Lifetime: lifetime,
		Factory: func(r Resolver) (any, error) {
			return factory(r)
		},
	}
	if disposer != nil {
		reg.Disposer = func(ctx context.Context, instance any) error {
			if instance == nil {
				return nil
			}
			v, ok := instance.(T)
			if !ok {
				return fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, key.name, instance)
			}
			return disposer(ctx, v)
		}
	}
	return c.Register(reg)
}

// Resolve resolves key through r and asserts the instance type.
func Resolve[T any](r Resolver, key Key[T]) (T, error) {
	var zero T
	inst, err := r.Resolve(key.name)
	if err != nil {
		return zero, err
	}
	if inst == nil {
		return zero, nil
	}
	v, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key.name, inst, zero)
	}
	return v, nil
}

// MustResolve is Resolve for wiring code that has already passed Validate.
func MustResolve[T any](r Resolver, key Key[T]) T {
	v, err := Resolve(r, key)
	if err != nil {
		panic(err)
	}
	return v
}
