package usecase

import (
	"errors"
	"fmt"
)

// Sentinels mapped to transport status codes.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Refinements that still match their sentinel through errors.Is.
var (
	ErrUnknownTeam = fmt.Errorf("%w: unknown team", ErrNotFound)
	ErrSameTeam    = fmt.Errorf("%w: home and away team must differ", ErrInvalidInput)
)
