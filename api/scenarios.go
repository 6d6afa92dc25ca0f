/*
scenarios.go - Demo scenario presets

PURPOSE:
  Provides pre-built grid configurations for demos and for frontends
  that want a starting point before the user has entered anything.
  Scenarios are plain data - no state is created or persisted.

AVAILABLE SCENARIOS:
  engineer-annual:   $100k salary, money per year
  engineer-monthly:  $100k salary, money per month
  contractor:        $250k salary, money per year
  time-saved:        Time mode - how much time automation accumulates
  no-salary:         Money mode before any salary is entered

USAGE VIA API:
  GET /api/scenarios          List presets
  GET /api/scenarios/{id}     Rendered grid for a preset

ADDING NEW SCENARIOS:
  Append to the 'scenarios' slice. The config uses the same JSON schema
  as POST /api/grid, so anything a client can request can be a preset.

SEE ALSO:
  - handlers.go: ListScenarios, GetScenarioGrid handlers
  - factory/config.go: Config JSON schema
*/
package api

import (
	"github.com/swkovma/isitworththetime/factory"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "engineer-annual",
		Name:        "Engineer, yearly view",
		Description: "What shaving time off a task is worth per year on a $100k salary",
		Config:      factory.GridConfigJSON{Salary: 100_000, Period: "annual", Mode: "money"},
	},
	{
		ID:          "engineer-monthly",
		Name:        "Engineer, monthly view",
		Description: "The same grid scoped to a month - 5 minutes daily is about $87/month",
		Config:      factory.GridConfigJSON{Salary: 100_000, Period: "monthly", Mode: "money"},
	},
	{
		ID:          "contractor",
		Name:        "Contractor rates",
		Description: "Higher salary shifts every cell up a tier or two",
		Config:      factory.GridConfigJSON{Salary: 250_000, Period: "annual", Mode: "money"},
	},
	{
		ID:          "time-saved",
		Name:        "Time accumulated",
		Description: "Ignore money: how much working time does the automation win back per year",
		Config:      factory.GridConfigJSON{Mode: "time", Period: "annual"},
	},
	{
		ID:          "no-salary",
		Name:        "Before salary entry",
		Description: "Money mode with no salary renders placeholder cells",
		Config:      factory.GridConfigJSON{Salary: 0, Period: "annual", Mode: "money"},
	},
}

func findScenario(id string) (ScenarioDTO, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioDTO{}, false
}
