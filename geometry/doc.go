// Package geometry holds small, non-hot-path geometric helpers used by
// package hazard. It is ordinary plumbing kept separate from the
// collision kernel so the kernel's hot path stays free of anything not
// directly load-bearing for its branch-sensitive structure.
package geometry
