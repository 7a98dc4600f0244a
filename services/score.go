package services

import "math"

// OverallScore computes the aggregate health score as the rounded
// arithmetic mean of the five metric scores. Rounding is
// half-away-from-zero (math.Round); note that a mean of five integers
// always has a fractional part that is a multiple of 0.2, so an exact
// .5 tie cannot occur.
//
// The function is total over its inputs and does not clamp: range
// checking happens before values get here.
func OverallScore(sleep, nutrition, exercise, hydration, mood int) int {
	sum := sleep + nutrition + exercise + hydration + mood
	return int(math.Round(float64(sum) / 5.0))
}
