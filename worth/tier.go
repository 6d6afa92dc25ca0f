/*
tier.go - Discrete magnitude classifiers

PURPOSE:
  Maps a computed value to one of five tiers used for heatmap coloring.
  Currency tiers are salary-relative (the same $500 matters more on a
  $20k salary than a $500k one); time tiers are absolute.

NOTE ON CONSTANTS:
  TimeTier uses literal second thresholds rather than the derived work
  calendar constants used elsewhere. The input is a single scalar, so the
  thresholds were tuned directly as seconds; keep them literal.

SEE ALSO:
  - opacity.go: The continuous counterpart of these classifiers
*/
package worth

// =============================================================================
// CURRENCY TIER
// =============================================================================

// CurrencyTier buckets a monetary value relative to salary. The ratio is
// parts-per-100k of salary, with decade boundaries between tiers.
// Callers must ensure salary > 0; this function does not guard it.
func CurrencyTier(value, salary float64) Tier {
	ratio := 100_000 * (value / salary)
	switch {
	case ratio < 10:
		return Tier1
	case ratio < 100:
		return Tier2
	case ratio < 1_000:
		return Tier3
	case ratio < 10_000:
		return Tier4
	default:
		return Tier5
	}
}

// =============================================================================
// TIME TIER
// =============================================================================

// TimeTier buckets an accumulated time saving. Thresholds are seconds on
// an 8-hour-day basis: 45s, 45min, 0.8 days, 4 days.
func TimeTier(displaySeconds float64) Tier {
	switch {
	case displaySeconds < 45:
		return Tier1
	case displaySeconds < 2_700:
		return Tier2
	case displaySeconds < 23_040:
		return Tier3
	case displaySeconds < 115_200:
		return Tier4
	default:
		return Tier5
	}
}
