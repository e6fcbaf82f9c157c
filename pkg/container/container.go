// Package container is a small dependency-injection registry with explicit
// lifetimes and reverse-realization-order teardown.
package container

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"resource-api/pkg/log"
)

// Container owns the registrations, the singleton cache and the order in which
// singletons were realized. It is safe for concurrent use.
type Container struct {
	l log.Logger

	mu        sync.Mutex
	regs      map[string]Registration
	order     []string
	instances map[string]any
	realized  []string
	disposed  bool
}

// New creates an empty Container. A nil logger discards disposal logs.
func New(l log.Logger) *Container {
	if l == nil {
		l = log.NewNop()
	}
	return &Container{
		l:         l,
		regs:      make(map[string]Registration),
		instances: make(map[string]any),
	}
}

// Register adds reg. Registering the same name twice is a configuration error.
func (c *Container) Register(reg Registration) error {
	if strings.TrimSpace(reg.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRegistration)
	}
	if reg.Factory == nil {
		return fmt.Errorf("%w: %q has no factory", ErrInvalidRegistration, reg.Name)
	}
	if reg.Lifetime != Singleton && reg.Lifetime != Transient {
		return fmt.Errorf("%w: %q has lifetime %d", ErrInvalidRegistration, reg.Name, reg.Lifetime)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return fmt.Errorf("%w: register %q", ErrContainerDisposed, reg.Name)
	}
	if _, ok := c.regs[reg.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, reg.Name)
	}
	c.regs[reg.Name] = reg
	c.order = append(c.order, reg.Name)
	return nil
}

// Resolve returns the instance registered under name, building it and its
// dependencies as needed. It must not be called from inside a Factory; use
// the Resolver the factory receives.
func (c *Container) Resolve(name string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil, fmt.Errorf("%w: resolve %q", ErrContainerDisposed, name)
	}
	return (&resolution{c: c}).resolveLocked(name)
}

// Validate resolves every registration once, in registration order, and
// returns the first failure. Call it at startup so wiring mistakes surface
// before traffic is served.
func (c *Container) Validate() error {
	c.mu.Lock()
	names := slices.Clone(c.order)
	c.mu.Unlock()

	for _, name := range names {
		if _, err := c.Resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the registered names in registration order.
func (c *Container) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.order)
}

// DisposeAll tears down realized singletons in reverse realization order.
// A failing disposer is logged and does not stop the rest; all failures are
// returned joined. After DisposeAll the container refuses every Resolve.
func (c *Container) DisposeAll(ctx context.Context) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.disposed = true
	realized := c.realized
	instances := c.instances
	regs := c.regs
	c.realized = nil
	c.instances = make(map[string]any)
	c.mu.Unlock()

	var errs []error
	for i := len(realized) - 1; i >= 0; i-- {
		name := realized[i]
		reg := regs[name]
		if reg.Disposer == nil {
			continue
		}
		if err := dispose(ctx, reg.Disposer, instances[name]); err != nil {
			c.l.Errorf(ctx, "container.DisposeAll %q: %v", name, err)
			errs = append(errs, fmt.Errorf("dispose %q: %w", name, err))
			continue
		}
		c.l.Debugf(ctx, "container.DisposeAll %q disposed", name)
	}
	return errors.Join(errs...)
}

func dispose(ctx context.Context, d Disposer, instance any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("disposer panicked: %v", r)
		}
	}()
	return d(ctx, instance)
}

// resolution is the Resolver handed to a factory. It carries the dependency
// path so cycles are reported instead of recursing forever. While the factory
// runs the container lock is already held; once the factory has returned the
// view falls back to the locking Container.Resolve.
type resolution struct {
	c      *Container
	path   []string
	closed bool
}

func (r *resolution) Resolve(name string) (any, error) {
	if r.closed {
		return r.c.Resolve(name)
	}
	return r.resolveLocked(name)
}

func (r *resolution) resolveLocked(name string) (any, error) {
	reg, ok := r.c.regs[name]
	if !ok {
		if len(r.path) > 0 {
			return nil, fmt.Errorf("%w: %q (required by %s)", ErrUnknownDependency, name, strings.Join(r.path, " -> "))
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownDependency, name)
	}

	if reg.Lifetime == Singleton {
		if inst, ok := r.c.instances[name]; ok {
			return inst, nil
		}
	}

	if slices.Contains(r.path, name) {
		cycle := append(slices.Clone(r.path), name)
		return nil, fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(cycle, " -> "))
	}

	child := &resolution{c: r.c, path: append(slices.Clone(r.path), name)}
	inst, err := reg.Factory(child)
	child.closed = true
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", name, err)
	}

	if reg.Lifetime == Singleton {
		r.c.instances[name] = inst
		r.c.realized = append(r.c.realized, name)
	}
	return inst, nil
}
