// Package hazard models the moving circular obstacles ("missiles") a
// planned path must avoid, and the set of them active in a scenario.
//
// A Missile is a line segment in space walked at constant speed over
// a bounded lifetime [TimeBeg, TimeEnd]; outside that window it does
// not exist and cannot be collided with. HazardSet tracks many
// missiles under stable integer identifiers, in insertion order, so
// callers that need to report "which hazard blocked this edge" get a
// identifier that never changes meaning once assigned.
package hazard
