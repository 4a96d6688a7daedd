package hazard

import "errors"

// Sentinel errors of this package.
var (
	// ErrNonPositiveSpeed indicates that a missile was asked to travel
	// at zero or negative speed, which would make its time-of-flight
	// undefined or infinite.
	ErrNonPositiveSpeed = errors.New("hazard: speed must be positive")

	// ErrDegenerateTrajectory indicates that a missile's origin and
	// target coincide, leaving no direction of travel to derive a
	// velocity from.
	ErrDegenerateTrajectory = errors.New("hazard: origin and target coincide")

	// ErrUnknownHazard names the case of a hazard identifier that does
	// not correspond to any missile tracked by the set. No function in
	// this package returns it; HazardSet.Get reports that case with a
	// false second result.
	ErrUnknownHazard = errors.New("hazard: unknown hazard id")
)
