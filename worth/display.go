/*
display.go - The per-cell facade

PURPOSE:
  Composes calculators, formatters, tier and opacity classifiers into one
  call per grid cell. This is the sole entry point renderers should use:
  it encodes the zero/negative-salary policy, so bypassing it means
  re-implementing that policy.

GUARD POLICY (money mode, salary <= 0):
  Text gets the placeholder, opacity defaults to 1, tier stays empty.
  This sidesteps the undefined logarithm in CurrencyOpacity without
  burdening the low-level classifiers with display decisions.

PERIOD SCOPING:
  The displayed text follows the requested period; tier and opacity are
  always computed from the ANNUAL value so a cell keeps its color and
  prominence when the caller toggles annual/monthly.

SEE ALSO:
  - calc.go, format.go, tier.go, opacity.go
*/
package worth

// =============================================================================
// CELL DISPLAY FACADE
// =============================================================================

// DisplayCell computes the full rendering instruction for one grid cell.
// An empty symbol defaults to "$".
func DisplayCell(salary, multiplier, seconds float64, period Period, mode DisplayMode, symbol string) Display {
	if symbol == "" {
		symbol = "$"
	}

	if mode == ModeTime {
		displaySeconds := TimeValue(multiplier, seconds, period)
		return Display{
			Text:    FormatTime(displaySeconds),
			Opacity: TimeOpacity(displaySeconds),
			Tier:    TimeTier(displaySeconds),
		}
	}

	if salary <= 0 {
		return Display{Text: Placeholder, Opacity: 1, Tier: TierNone}
	}

	displayMoney := CellValue(salary, multiplier, seconds, period)
	annualValue := CellValue(salary, multiplier, seconds, PeriodAnnual)

	d := Display{
		Text:    FormatCurrency(displayMoney, symbol),
		Opacity: CurrencyOpacity(annualValue, salary),
	}
	if annualValue > 0 {
		d.Tier = CurrencyTier(annualValue, salary)
	}
	return d
}
