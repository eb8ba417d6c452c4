package searcher

import "math"

// Search window bounds. minScore sits below game.Loss so that even a lost
// turn replaces the initial best.
const (
	minScore = math.MinInt
	maxScore = math.MaxInt
)
