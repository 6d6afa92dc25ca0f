/*
Package grid lays out the full frequency × duration matrix of rendered cells.

PURPOSE:
  The calculation engine answers one (frequency, duration) pair at a time;
  this package enumerates the reference tables and calls the engine once
  per combination, producing the complete structure a renderer walks to
  draw the heatmap.

SHAPE:
  Rows are duration buckets (shortest first), columns are frequency
  buckets (most frequent first), matching the reference table order.
  Cells[row][col] carries the bucket labels alongside the composed
  display result so a renderer needs no further lookups.

PURITY:
  Build is pure: same config in, same grid out. No state, no I/O.

SEE ALSO:
  - worth/tables.go: The enumerated reference tables
  - worth/display.go: The per-cell facade Build delegates to
*/
package grid

import (
	"github.com/swkovma/isitworththetime/worth"
)

// =============================================================================
// CONFIG
// =============================================================================

// Config is everything Build needs to render a grid.
type Config struct {
	Salary float64           `json:"salary"`
	Period worth.Period      `json:"period"`
	Mode   worth.DisplayMode `json:"mode"`
	Symbol string            `json:"currency_symbol"`
}

// =============================================================================
// GRID
// =============================================================================

// Cell is one rendered grid position with its row/column buckets.
type Cell struct {
	Frequency worth.FrequencyItem `json:"frequency"`
	Duration  worth.DurationItem  `json:"duration"`
	Display   worth.Display       `json:"display"`
}

// Grid is the complete rendered matrix.
type Grid struct {
	Config      Config                `json:"config"`
	Frequencies []worth.FrequencyItem `json:"frequencies"`
	Durations   []worth.DurationItem  `json:"durations"`

	// Cells[row][col]: row indexes Durations, col indexes Frequencies.
	Cells [][]Cell `json:"cells"`
}

// Build renders the full matrix for the given configuration.
func Build(cfg Config) *Grid {
	g := &Grid{
		Config:      cfg,
		Frequencies: worth.Frequencies,
		Durations:   worth.Durations,
		Cells:       make([][]Cell, len(worth.Durations)),
	}

	for row, d := range worth.Durations {
		cells := make([]Cell, len(worth.Frequencies))
		for col, f := range worth.Frequencies {
			cells[col] = Cell{
				Frequency: f,
				Duration:  d,
				Display: worth.DisplayCell(
					cfg.Salary, f.Multiplier, d.Seconds,
					cfg.Period, cfg.Mode, cfg.Symbol,
				),
			}
		}
		g.Cells[row] = cells
	}
	return g
}
