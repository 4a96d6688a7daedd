package pos

import "errors"

// Sentinel errors returned by this package's constructors.
var (
	// ErrNaNCoordinate indicates that one of x, y, or t was NaN.
	// Positions are disallowed from carrying NaN so that equality and
	// hashing stay well-defined (see doc.go).
	ErrNaNCoordinate = errors.New("pos: coordinate is NaN")
)
