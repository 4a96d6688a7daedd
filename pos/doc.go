// Package pos defines the space-time node type shared by the hazard,
// collision and pathfind packages.
//
// A Position is a (x, y, t) triple: two spatial coordinates and a time
// coordinate, all finite float64 values. Positions are value types —
// copied, and compared and hashed with Go's built-in == on their three
// float64 fields (exact equality, where +0 and -0 are equal) — so that
// the planner in package pathfind can use Position directly as a
// comparable map key without any caller-side wrapping. The package
// defines no ordering on positions.
//
// Quantisation (snapping to a grid so that two positions produced by
// different paths compare equal) is the caller's responsibility; this
// package never rounds or introduces an epsilon into equality or hashing.
package pos
