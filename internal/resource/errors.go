package resource

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidSort            = errors.New("invalid sort")
	ErrConcurrentModification = errors.New("resource was modified concurrently")
)
