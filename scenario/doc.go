// Package scenario synthesizes random hazard sets for demos and
// benchmarks. It has no bearing on path-search correctness; its only
// job is turning a seed and a few ranges into a reproducible
// *hazard.HazardSet.
package scenario
