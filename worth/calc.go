/*
calc.go - Raw value calculators

PURPOSE:
  Converts (salary, frequency multiplier, duration seconds, period) into
  either a monetary value or a time-saved value. These are the two numbers
  everything else in the engine formats, tiers, and fades.

THE CORE FORMULA:
  hourlyRate  = salary / WorkHoursPerYear          (2000 work hours)
  annualValue = hourlyRate * (occurrences * seconds / 3600)

  A monthly period divides the annual figure by 12; nothing else changes.

NO BOUNDS CHECKING:
  A salary <= 0 yields zero or negative output. Display policy for such
  values lives in the facade (display.go), not here.

SEE ALSO:
  - display.go: Applies the zero-salary guard before rendering
*/
package worth

// =============================================================================
// VALUE CALCULATORS
// =============================================================================

// CellValue returns the monetary value of the time saved for one
// (frequency, duration) combination, scoped to the given period.
func CellValue(salary, multiplier, seconds float64, period Period) float64 {
	hourlyRate := salary / WorkHoursPerYear
	annual := hourlyRate * (multiplier * seconds / SecondsPerHour)
	if period == PeriodMonthly {
		return annual / MonthsPerYear
	}
	return annual
}

// TimeValue returns the accumulated time saved in seconds, scoped to the
// given period. Returns seconds, not hours.
func TimeValue(multiplier, seconds float64, period Period) float64 {
	raw := multiplier * seconds
	if period == PeriodMonthly {
		return raw / MonthsPerYear
	}
	return raw
}
