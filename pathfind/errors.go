package pathfind

import "errors"

// Sentinel errors describing malformed Find/FindWithInitial arguments.
// These are surfaced via panic, not a returned error, since a nil
// callback is a programming mistake rather than recoverable input.
var (
	// ErrNilSuccessors indicates the successors callback was nil.
	ErrNilSuccessors = errors.New("pathfind: successors callback is nil")

	// ErrNilIsValidMove indicates the isValidMove callback was nil.
	ErrNilIsValidMove = errors.New("pathfind: isValidMove callback is nil")

	// ErrNilMovementCost indicates the movementCost callback was nil.
	ErrNilMovementCost = errors.New("pathfind: movementCost callback is nil")

	// ErrNilHeuristic indicates the heuristic callback was nil.
	ErrNilHeuristic = errors.New("pathfind: heuristic callback is nil")

	// ErrNilSuccess indicates the success callback was nil.
	ErrNilSuccess = errors.New("pathfind: success callback is nil")
)
