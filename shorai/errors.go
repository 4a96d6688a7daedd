package shorai

import "errors"

// Sentinel errors returned by Request validation in FindPath.
var (
	ErrNilHazards           = errors.New("shorai: hazards is nil")
	ErrNonPositiveStepSize  = errors.New("shorai: step size must be positive")
	ErrNonPositiveMoveSpeed = errors.New("shorai: move speed must be positive")
	ErrNonPositiveMaxSteps  = errors.New("shorai: max steps must be positive")
	ErrNonPositiveMaxTime   = errors.New("shorai: max time must be positive")
)
