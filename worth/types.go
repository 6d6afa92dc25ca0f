/*
Package worth computes the value of time saved by automating a recurring task.

PURPOSE:
  This package contains the full calculation engine behind the "is it worth
  the time?" grid: given a salary, how often a task happens, and how much
  time each occurrence saves, it answers what that time is worth - either
  as money or as accumulated time - and how prominently a grid cell showing
  that answer should be rendered.

KEY CONCEPTS IN THIS FILE (types.go):
  - Period: Whether values are expressed per year or per month
  - DisplayMode: Whether a cell shows money or time saved
  - Tier: Discrete magnitude bucket (tier-1..tier-5) for heatmap coloring
  - Display: The composed result for one grid cell {Text, Opacity, Tier}
  - Work calendar constants: 8h day, 5-day week, 250-day year

DESIGN PRINCIPLES:
  1. Purity: Every function is deterministic with no hidden state
  2. Reference tables are immutable after process start
  3. Graceful degradation: Bad input yields placeholders, never panics
  4. The facade (DisplayCell) owns the zero-salary guard policy

USAGE:
  cell := worth.DisplayCell(100000, 250, 300, worth.PeriodMonthly, worth.ModeMoney, "$")
  // cell.Text == "$87", cell.Tier == "tier-4", cell.Opacity in [0.2, 1.0]

SEE ALSO:
  - tables.go: Frequency and duration reference tables
  - calc.go: Raw value calculators
  - format.go: Currency and time formatters
  - tier.go, opacity.go: Visual classifiers
  - display.go: The per-cell facade
*/
package worth

// =============================================================================
// WORK CALENDAR - The public contract for all time/money conversions
// =============================================================================

// The engine values time against a working calendar, not a wall-clock one:
// a "day" of saved time is a work day, and a salary buys work hours only.
const (
	HoursPerDay     = 8
	DaysPerWeek     = 5
	WorkDaysPerYear = 250
	MonthsPerYear   = 12

	// WorkHoursPerYear is HoursPerDay * WorkDaysPerYear. External
	// documentation that displays an hourly rate must stay consistent
	// with this figure.
	WorkHoursPerYear = HoursPerDay * WorkDaysPerYear

	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = HoursPerDay * SecondsPerHour
	SecondsPerWeek   = DaysPerWeek * SecondsPerDay
	SecondsPerYear   = WorkDaysPerYear * SecondsPerDay
)

// =============================================================================
// PERIOD - Annual or monthly expression of a value
// =============================================================================

// Period selects whether a computed value is expressed per year or per
// month. It is a pure modifier: monthly divides annual figures by 12.
type Period string

const (
	PeriodAnnual  Period = "annual"
	PeriodMonthly Period = "monthly"
)

// =============================================================================
// DISPLAY MODE - Money or time
// =============================================================================

// DisplayMode selects which formatter/tier/opacity path a cell uses.
type DisplayMode string

const (
	ModeMoney DisplayMode = "money"
	ModeTime  DisplayMode = "time"
)

// =============================================================================
// TIER - Discrete magnitude bucket
// =============================================================================

// Tier is a discrete visual bucket indicating the relative magnitude of a
// cell value. TierNone marks cells with nothing meaningful to color.
type Tier string

const (
	TierNone Tier = ""
	Tier1    Tier = "tier-1"
	Tier2    Tier = "tier-2"
	Tier3    Tier = "tier-3"
	Tier4    Tier = "tier-4"
	Tier5    Tier = "tier-5"
)

// =============================================================================
// DISPLAY - Composed result for one grid cell
// =============================================================================

// Placeholder is shown in money mode when no salary is available.
const Placeholder = "—"

// Display is the fully composed rendering instruction for one grid cell.
// Produced fresh per call; owned by the caller.
type Display struct {
	Text    string  `json:"text"`
	Opacity float64 `json:"opacity"`
	Tier    Tier    `json:"tier"`
}
