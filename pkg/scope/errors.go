package scope

import "errors"

var (
	ErrEmptySecret        = errors.New("scope: empty secret key")
	ErrMissingSubject     = errors.New("scope: token has no user id")
	ErrUnsupportedVersion = errors.New("scope: unsupported payload version")
)
