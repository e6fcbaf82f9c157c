package container

import "context"

// Lifetime decides whether a registration is built once or on every resolution.
type Lifetime int

const (
	// Singleton instances are built on first resolution and cached until DisposeAll.
	Singleton Lifetime = iota
	// Transient instances are built on every resolution and never cached or disposed.
	Transient
)

func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// Resolver looks up dependencies by name. Factories receive one scoped to the
// resolution that invoked them.
type Resolver interface {
	Resolve(name string) (any, error)
}

// Factory builds an instance, pulling its own dependencies from r.
//
// The container lock is held while a factory runs, so a factory must resolve
// through r only. Calling Container.Resolve or any other Container method from
// inside a factory deadlocks. A Resolver captured by a factory stays usable
// once the factory has returned.
type Factory func(r Resolver) (any, error)

// Disposer releases what a singleton instance holds.
type Disposer func(ctx context.Context, instance any) error

// Registration describes one named component.
type Registration struct {
	Name     string
	Factory  Factory
	Lifetime Lifetime
	Disposer Disposer
}
