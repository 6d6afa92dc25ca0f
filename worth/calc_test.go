package worth_test

import (
	"math"
	"testing"

	"github.com/swkovma/isitworththetime/worth"
)

// =============================================================================
// VALUE CALCULATORS
// =============================================================================

func TestCellValue_HourlyRateBasis(t *testing.T) {
	// GIVEN: A $100k salary (=> $50/hour over 2000 work hours)
	// WHEN: A 5-minute task runs every work day (250x/year)
	// THEN: Annual value is 50 * (250*300/3600) ≈ $1041.67

	got := worth.CellValue(100_000, 250, 300, worth.PeriodAnnual)
	want := 50.0 * (250.0 * 300.0 / 3600.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("annual value = %v, want %v", got, want)
	}
}

func TestCellValue_MonthlyIsAnnualOverTwelve(t *testing.T) {
	// GIVEN: Any positive (salary, multiplier, seconds) combination
	// WHEN: Computing both period scopes
	// THEN: monthly == annual / 12, exactly

	salaries := []float64{1, 20_000, 100_000, 750_000}
	for _, salary := range salaries {
		for _, f := range worth.Frequencies {
			for _, d := range worth.Durations {
				annual := worth.CellValue(salary, f.Multiplier, d.Seconds, worth.PeriodAnnual)
				monthly := worth.CellValue(salary, f.Multiplier, d.Seconds, worth.PeriodMonthly)
				if math.Abs(monthly-annual/12) > 1e-9*math.Max(1, annual) {
					t.Fatalf("salary=%v %s/%s: monthly %v != annual/12 %v",
						salary, f.Label, d.Label, monthly, annual/12)
				}
			}
		}
	}
}

func TestCellValue_NonPositiveSalaryPassesThrough(t *testing.T) {
	// No bounds checking here: display policy belongs to the facade.

	if got := worth.CellValue(0, 250, 300, worth.PeriodAnnual); got != 0 {
		t.Errorf("zero salary should yield 0, got %v", got)
	}
	if got := worth.CellValue(-100_000, 250, 300, worth.PeriodAnnual); got >= 0 {
		t.Errorf("negative salary should yield negative value, got %v", got)
	}
}

func TestTimeValue_ReturnsSeconds(t *testing.T) {
	// GIVEN: 5 minutes saved every work day
	// WHEN: Computing the annual time value
	// THEN: Result is in seconds (250 * 300), not hours

	got := worth.TimeValue(250, 300, worth.PeriodAnnual)
	if got != 75_000 {
		t.Errorf("annual time = %v, want 75000 seconds", got)
	}

	monthly := worth.TimeValue(250, 300, worth.PeriodMonthly)
	if math.Abs(monthly-6_250) > 1e-9 {
		t.Errorf("monthly time = %v, want 6250 seconds", monthly)
	}
}
