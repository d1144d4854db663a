package usecase

import "errors"

var (
	// ErrStorage marks a transient store failure. Callers may retry; the
	// usecases themselves never do.
	ErrStorage = errors.New("storage unavailable")

	ErrInvalidInput = errors.New("invalid input")
)
