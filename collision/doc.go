// Package collision implements the continuous-time circle-vs-circle
// collision kernel, one of the two hard parts of this system (the
// other being package pathfind's search loop).
//
// WithinWindow answers a single question: given two points moving at
// constant velocity, do they come within a given combined radius of
// each other at any time in a bounded window? It is a pure numeric
// predicate — no allocations, no state, and deliberately not
// algebraically simplified further, since doing so has been measured
// to regress throughput on this hot path (see WithinWindow's doc
// comment for specifics).
package collision
