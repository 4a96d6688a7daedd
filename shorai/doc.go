// Package shorai wires the geometry-ignorant planner in package
// pathfind to this project's actual domain: space-time positions from
// package pos, moving circular hazards from package hazard, and the
// collision kernel in package collision. It is the thin, deterministic
// facade a caller reaches for — FindPath and nothing else.
package shorai
