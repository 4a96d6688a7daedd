package pos

// Cost is the additive, totally-ordered cost type used throughout the
// planner. It is a finite, non-negative real in practice; NaN is a
// precondition violation the same way it is for Position coordinates.
type Cost float64

// Zero is the identity element for Cost addition.
const Zero Cost = 0
