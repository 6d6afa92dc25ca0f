/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's internal types from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific shapes (rows carry their cells for easy rendering)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Complex response wrappers
  Request bodies reuse factory.GridConfigJSON - the factory owns that
  schema and its validation.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/config.go: GridConfigJSON type
*/
package api

import (
	"github.com/swkovma/isitworththetime/factory"
	"github.com/swkovma/isitworththetime/grid"
	"github.com/swkovma/isitworththetime/worth"
)

// =============================================================================
// REFERENCE TABLE TYPES
// =============================================================================

// FrequencyDTO is one frequency bucket in API responses.
type FrequencyDTO struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// DurationDTO is one duration bucket in API responses.
type DurationDTO struct {
	Label   string  `json:"label"`
	Seconds float64 `json:"seconds"`
}

// TablesConstantsDTO carries the work-calendar contract clients may show.
type TablesConstantsDTO struct {
	WorkHoursPerYear int `json:"work_hours_per_year"`
	WorkDaysPerYear  int `json:"work_days_per_year"`
}

// =============================================================================
// CELL / GRID TYPES
// =============================================================================

// CellDTO is one rendered cell.
type CellDTO struct {
	Text    string  `json:"text"`
	Opacity float64 `json:"opacity"`
	Tier    string  `json:"tier"`
}

// CellResponse echoes the inputs alongside the rendered cell.
type CellResponse struct {
	Salary     float64 `json:"salary"`
	Multiplier float64 `json:"multiplier"`
	Seconds    float64 `json:"seconds"`
	Period     string  `json:"period"`
	Mode       string  `json:"mode"`
	Symbol     string  `json:"currency_symbol"`
	Cell       CellDTO `json:"cell"`
}

// RowDTO is one grid row: a duration bucket plus its rendered cells in
// column (frequency) order.
type RowDTO struct {
	Duration DurationDTO `json:"duration"`
	Cells    []CellDTO   `json:"cells"`
}

// GridDTO is the complete rendered grid.
type GridDTO struct {
	Salary  float64        `json:"salary"`
	Period  string         `json:"period"`
	Mode    string         `json:"mode"`
	Symbol  string         `json:"currency_symbol"`
	Columns []FrequencyDTO `json:"columns"`
	Rows    []RowDTO       `json:"rows"`
}

// =============================================================================
// SCENARIO TYPES
// =============================================================================

// ScenarioDTO is a named demo preset.
type ScenarioDTO struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Config      factory.GridConfigJSON `json:"config"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toCellDTO(d worth.Display) CellDTO {
	return CellDTO{Text: d.Text, Opacity: d.Opacity, Tier: string(d.Tier)}
}

func toGridDTO(g *grid.Grid) GridDTO {
	dto := GridDTO{
		Salary:  g.Config.Salary,
		Period:  string(g.Config.Period),
		Mode:    string(g.Config.Mode),
		Symbol:  g.Config.Symbol,
		Columns: make([]FrequencyDTO, len(g.Frequencies)),
		Rows:    make([]RowDTO, len(g.Cells)),
	}
	for i, f := range g.Frequencies {
		dto.Columns[i] = FrequencyDTO{Label: f.Label, Multiplier: f.Multiplier}
	}
	for row, cells := range g.Cells {
		d := g.Durations[row]
		r := RowDTO{
			Duration: DurationDTO{Label: d.Label, Seconds: d.Seconds},
			Cells:    make([]CellDTO, len(cells)),
		}
		for col, c := range cells {
			r.Cells[col] = toCellDTO(c.Display)
		}
		dto.Rows[row] = r
	}
	return dto
}
