package container

import "errors"

var (
	ErrDuplicateRegistration = errors.New("container: duplicate registration")
	ErrUnknownDependency     = errors.New("container: unknown dependency")
	ErrCircularDependency    = errors.New("container: circular dependency")
	ErrContainerDisposed     = errors.New("container: already disposed")
	ErrInvalidRegistration   = errors.New("container: invalid registration")
	ErrTypeMismatch          = errors.New("container: type mismatch")
)
