/*
opacity.go - Continuous fade classifiers

PURPOSE:
  Produces a per-cell opacity in [0.2, 1.0] that visually de-emphasizes
  implausible extremes: trivially small values fade out linearly, and
  absurdly large ones fade out logarithmically. Mid-range values render
  fully opaque.

SHAPE:
  Each classifier is the min of two fades, both clamped to [0.2, 1.0]
  before the min is taken:
    low fade:  linear, from the floor at the low anchor up to 1
    high fade: logarithmic, from 1 at the high anchor down to the floor

DOMAIN:
  Defined for value/seconds > 0. Non-positive input returns the 0.2 floor
  rather than propagating the undefined logarithm; the facade guards the
  salary side upstream so this path is only reachable via direct calls.

SEE ALSO:
  - tier.go: The discrete counterpart of these classifiers
  - display.go: Guards salary before calling CurrencyOpacity
*/
package worth

import "math"

// OpacityFloor is the minimum opacity a cell is ever rendered at.
const OpacityFloor = 0.2

// =============================================================================
// CURRENCY OPACITY
// =============================================================================

// CurrencyOpacity fades a monetary value relative to salary. Values from
// $5 up to 5% of salary are fully opaque; below $1 or above 200% of
// salary the floor applies.
func CurrencyOpacity(value, salary float64) float64 {
	if value <= 0 || salary <= 0 {
		return OpacityFloor
	}
	high := fadeLog(value, 0.05*salary, 2*salary)
	low := fadeLinear(value, 1, 5)
	return math.Min(high, low)
}

// =============================================================================
// TIME OPACITY
// =============================================================================

// TimeOpacity fades an accumulated time saving. Savings from one minute
// up to four work weeks are fully opaque; below 1s or beyond a work year
// the floor applies.
func TimeOpacity(seconds float64) float64 {
	if seconds <= 0 {
		return OpacityFloor
	}
	low := fadeLinear(seconds, 1, 60)
	high := fadeLog(seconds, 4*SecondsPerWeek, SecondsPerYear)
	return math.Min(low, high)
}

// =============================================================================
// FADE CURVES
// =============================================================================

// fadeLinear rises linearly from the floor at floorAt to 1 at full.
func fadeLinear(v, floorAt, full float64) float64 {
	t := (v - floorAt) / (full - floorAt)
	return clampOpacity(OpacityFloor + (1-OpacityFloor)*t)
}

// fadeLog falls logarithmically from 1 at full to the floor at floorAt.
func fadeLog(v, full, floorAt float64) float64 {
	t := (math.Log(v) - math.Log(full)) / (math.Log(floorAt) - math.Log(full))
	return clampOpacity(1 - (1-OpacityFloor)*t)
}

func clampOpacity(v float64) float64 {
	if v < OpacityFloor {
		return OpacityFloor
	}
	if v > 1 {
		return 1
	}
	return v
}
