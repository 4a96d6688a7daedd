// Package pathfind implements a generic any-angle A* search over a
// caller-supplied node type, with two features beyond textbook A*:
//
// Deferred edge validation. An edge's validity (collision-free, in
// this module's actual use) is checked only when it is popped off the
// frontier for expansion, never when it is generated. This lets the
// search generate many more candidate edges than it will ever
// validate, trading a larger frontier for far fewer validity checks.
//
// Lazy parent-skip shortcuts. When expanding a node p0 with parent p1,
// the search may optimistically try to connect p1 directly to a
// successor of p0 ("jump over" p0). The jump is pushed onto the
// frontier as if already valid, carrying a fallback edge (the
// original p0→successor edge) that is only resurrected if the jump
// is later popped and found invalid. This avoids ever validating a
// jump that the search doesn't end up caring about.
//
// None of this package knows what a node represents; every notion of
// distance, validity, or goal is supplied by the caller through the
// five callbacks passed to Find (plus the optional JumpCheck on
// Config).
package pathfind
