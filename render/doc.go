// Package render rasterizes a found path and the hazard set it was
// found against into a sequence of PNG frames, one per rendered time
// step. None of this is on the path-search hot path; it exists purely
// to turn a pathfind.Result into something a human can look at.
package render
