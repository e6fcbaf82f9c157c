// Package scope issues and verifies the signed bearer tokens that identify API callers.
package scope

import (
	"time"
)

// Manager verifies incoming tokens and signs new ones.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

type implManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option customizes a Manager.
type Option func(*implManager)

// WithIssuer sets the iss claim on issued tokens and requires it on verified ones.
func WithIssuer(issuer string) Option {
	return func(m *implManager) { m.issuer = issuer }
}

// WithTTL sets the lifetime of issued tokens. Zero means no expiry claim.
func WithTTL(ttl time.Duration) Option {
	return func(m *implManager) { m.ttl = ttl }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *implManager) { m.now = now }
}

// New creates an HS256 Manager.
func New(secretKey string, opts ...Option) (Manager, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	m := &implManager{
		secret: []byte(secretKey),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}
