/*
format.go - Compact human-readable formatting

PURPOSE:
  Turns raw numbers into the short strings a grid cell can hold: "$1.5k",
  "$12M", "3h", "2w". Both formatters are magnitude-bucketed tables
  evaluated top-down; the first matching band wins.

CURRENCY BANDS:
  The table deliberately mixes two precisions. The >=1e9, >=1e7, >=1e4 and
  >=1 bands use plain rounding; the 1e6-1e7 and 1e3-1e4 bands use
  fixed-point with the trailing ".0" trimmed ("1.5k", "2M"). Keep both
  rules; collapsing them changes output.

TIME BANDS:
  Work-calendar aware (8h day, 5-day week, 250-day year) with hysteresis:
  each unit takes over once the value is comfortably into its range, and
  fixed "1d"/"1h"/"1m" floors prevent outputs like "0d". The bands form a
  strict descending chain; reordering them breaks the hysteresis.

DOMAIN:
  Both formatters are total over finite non-negative inputs. Behavior for
  negative inputs is unspecified.

SEE ALSO:
  - display.go: Chooses which formatter a cell uses
*/
package worth

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CURRENCY FORMATTER
// =============================================================================

// FormatCurrency formats a monetary value into at most five characters of
// digits and suffix, prefixed by the currency symbol.
func FormatCurrency(value float64, symbol string) string {
	switch {
	case value >= 1_000_000_000:
		return symbol + roundWhole(value/1e9) + "B"
	case value >= 10_000_000:
		return symbol + roundWhole(value/1e6) + "M"
	case value >= 1_000_000:
		return symbol + trimFixed(value/1e6, 0) + "M"
	case value >= 10_000:
		return symbol + roundWhole(value/1e3) + "k"
	case value >= 1_000:
		return symbol + trimFixed(value/1e3, 1) + "k"
	case value >= 1:
		return symbol + roundWhole(value)
	case value >= 0.1:
		return symbol + decimal.NewFromFloat(value).StringFixed(2)
	default:
		return symbol + "0"
	}
}

// roundWhole is the plain-rounding rule: nearest integer, no decimals.
func roundWhole(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}

// trimFixed is the fixed-point rule: render to a fixed number of decimal
// places, then strip a trailing ".0" so 2.0 reads "2" but 1.5 stays "1.5".
func trimFixed(v float64, places int32) string {
	s := decimal.NewFromFloat(v).StringFixed(places)
	return strings.TrimSuffix(s, ".0")
}

// =============================================================================
// TIME FORMATTER
// =============================================================================

// FormatTime formats a number of saved seconds as a single unit: "42s",
// "3m", "1h", "2d", "1w", "1y". Sub-second values render as "<1s".
func FormatTime(totalSeconds float64) string {
	s := totalSeconds
	switch {
	case s < 1:
		return "<1s"
	case s >= SecondsPerYear*0.75:
		return roundUnit(s/SecondsPerYear, "y")
	case s >= SecondsPerDay*4:
		return roundUnit(s/SecondsPerWeek, "w")
	case s >= SecondsPerDay*1.5:
		return roundUnit(s/SecondsPerDay, "d")
	case s >= SecondsPerDay*0.75:
		return "1d"
	case s >= SecondsPerHour*2:
		return roundUnit(s/SecondsPerHour, "h")
	case s >= SecondsPerHour*0.75:
		return "1h"
	case s >= SecondsPerMinute*2:
		return roundUnit(s/SecondsPerMinute, "m")
	case s >= SecondsPerMinute*0.75:
		return "1m"
	default:
		return roundUnit(s, "s")
	}
}

func roundUnit(v float64, unit string) string {
	return strconv.Itoa(int(math.Round(v))) + unit
}
