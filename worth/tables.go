/*
tables.go - Fixed reference tables driving the grid

PURPOSE:
  Defines the two ordered lists the grid is built from: how often a task
  happens (frequency buckets, as annual occurrence multipliers) and how
  much time each occurrence saves (duration buckets, in seconds).

INVARIANT:
  Both tables are initialized once and never mutated. Callers enumerate
  them to lay out grid rows and columns; the engine only reads them.

ORDERING:
  Frequencies run from most frequent to least frequent.
  Durations run from shortest to longest.

SEE ALSO:
  - display.go: Consumes one (frequency, duration) pair per cell
*/
package worth

// =============================================================================
// FREQUENCY BUCKETS - How often the task happens
// =============================================================================

// FrequencyItem is a task cadence with its annual occurrence count.
// "Daily" means every work day, so its multiplier is WorkDaysPerYear.
type FrequencyItem struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// Frequencies is ordered from most frequent to least frequent.
var Frequencies = []FrequencyItem{
	{Label: "50x / day", Multiplier: 50 * WorkDaysPerYear},
	{Label: "5x / day", Multiplier: 5 * WorkDaysPerYear},
	{Label: "Daily", Multiplier: WorkDaysPerYear},
	{Label: "Weekly", Multiplier: WorkDaysPerYear / DaysPerWeek},
	{Label: "Monthly", Multiplier: MonthsPerYear},
	{Label: "Yearly", Multiplier: 1},
}

// =============================================================================
// DURATION BUCKETS - Time saved per occurrence
// =============================================================================

// DurationItem is a fixed "time saved per occurrence" value in seconds.
// "1 day" is a work day (8 hours), consistent with the work calendar.
type DurationItem struct {
	Label   string  `json:"label"`
	Seconds float64 `json:"seconds"`
}

// Durations is ordered from shortest to longest.
var Durations = []DurationItem{
	{Label: "1 second", Seconds: 1},
	{Label: "5 seconds", Seconds: 5},
	{Label: "30 seconds", Seconds: 30},
	{Label: "1 minute", Seconds: SecondsPerMinute},
	{Label: "5 minutes", Seconds: 5 * SecondsPerMinute},
	{Label: "30 minutes", Seconds: 30 * SecondsPerMinute},
	{Label: "1 hour", Seconds: SecondsPerHour},
	{Label: "4 hours", Seconds: 4 * SecondsPerHour},
	{Label: "1 day", Seconds: SecondsPerDay},
}
