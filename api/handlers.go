/*
handlers.go - HTTP API handlers for the time-value grid

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Tables:
    GET  /api/tables/frequencies  Frequency reference list
    GET  /api/tables/durations    Duration reference list
    GET  /api/tables/constants    Work-calendar constants

  Calculation:
    GET  /api/cell                One cell from query parameters
    GET  /api/grid                Full grid from query parameters
    POST /api/grid                Full grid from a JSON config body

  Scenarios:
    GET  /api/scenarios           List demo presets
    GET  /api/scenarios/{id}      Grid for one preset

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Factory: JSON/query config validation with defaults
  - Defaults: Grid parameters used when a request omits them

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input via the factory
  3. Call engine (worth.DisplayCell / grid.Build)
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown scenario

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo presets
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/swkovma/isitworththetime/factory"
	"github.com/swkovma/isitworththetime/grid"
	"github.com/swkovma/isitworththetime/worth"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Factory *factory.ConfigFactory

	// Defaults fill in grid parameters a request omits.
	Defaults factory.GridConfigJSON
}

// NewHandler creates a new handler with the given request defaults.
func NewHandler(defaults factory.GridConfigJSON) *Handler {
	return &Handler{
		Factory:  factory.NewConfigFactory(),
		Defaults: defaults,
	}
}

// =============================================================================
// TABLE HANDLERS
// =============================================================================

// ListFrequencies returns the frequency reference table.
// GET /api/tables/frequencies
func (h *Handler) ListFrequencies(w http.ResponseWriter, r *http.Request) {
	dtos := make([]FrequencyDTO, len(worth.Frequencies))
	for i, f := range worth.Frequencies {
		dtos[i] = FrequencyDTO{Label: f.Label, Multiplier: f.Multiplier}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListDurations returns the duration reference table.
// GET /api/tables/durations
func (h *Handler) ListDurations(w http.ResponseWriter, r *http.Request) {
	dtos := make([]DurationDTO, len(worth.Durations))
	for i, d := range worth.Durations {
		dtos[i] = DurationDTO{Label: d.Label, Seconds: d.Seconds}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetConstants returns the work-calendar contract.
// GET /api/tables/constants
func (h *Handler) GetConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TablesConstantsDTO{
		WorkHoursPerYear: worth.WorkHoursPerYear,
		WorkDaysPerYear:  worth.WorkDaysPerYear,
	})
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// GetCell renders a single cell from query parameters.
// GET /api/cell?salary=&multiplier=&seconds=&period=&mode=&symbol=
func (h *Handler) GetCell(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	multiplier, err := parseFloatParam(q.Get("multiplier"), "multiplier")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multiplier", err)
		return
	}
	seconds, err := parseFloatParam(q.Get("seconds"), "seconds")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid seconds", err)
		return
	}

	cfg, err := h.configFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid parameters", err)
		return
	}

	display := worth.DisplayCell(cfg.Salary, multiplier, seconds, cfg.Period, cfg.Mode, cfg.Symbol)

	writeJSON(w, http.StatusOK, CellResponse{
		Salary:     cfg.Salary,
		Multiplier: multiplier,
		Seconds:    seconds,
		Period:     string(cfg.Period),
		Mode:       string(cfg.Mode),
		Symbol:     cfg.Symbol,
		Cell:       toCellDTO(display),
	})
}

// GetGrid renders the full grid from query parameters.
// GET /api/grid?salary=&period=&mode=&symbol=
func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid parameters", err)
		return
	}
	writeJSON(w, http.StatusOK, toGridDTO(grid.Build(cfg)))
}

// ComputeGrid renders the full grid from a JSON config body.
// POST /api/grid
func (h *Handler) ComputeGrid(w http.ResponseWriter, r *http.Request) {
	var body factory.GridConfigJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	cfg, err := h.Factory.FromJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
		return
	}
	writeJSON(w, http.StatusOK, toGridDTO(grid.Build(cfg)))
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns all demo presets.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetScenarioGrid renders the grid for one preset.
// GET /api/scenarios/{id}
func (h *Handler) GetScenarioGrid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	scenario, ok := findScenario(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Unknown scenario %q", id), nil)
		return
	}

	cfg, err := h.Factory.FromJSON(scenario.Config)
	if err != nil {
		// Presets are code; a bad one is a programming error.
		writeError(w, http.StatusInternalServerError, "Invalid scenario configuration", err)
		return
	}
	writeJSON(w, http.StatusOK, toGridDTO(grid.Build(cfg)))
}

// =============================================================================
// REQUEST PARSING
// =============================================================================

// configFromQuery layers query parameters over the handler defaults and
// validates the result through the factory.
func (h *Handler) configFromQuery(r *http.Request) (grid.Config, error) {
	q := r.URL.Query()
	cfg := h.Defaults

	if raw := q.Get("salary"); raw != "" {
		salary, err := parseFloatParam(raw, "salary")
		if err != nil {
			return grid.Config{}, err
		}
		cfg.Salary = salary
	}
	if raw := q.Get("period"); raw != "" {
		cfg.Period = raw
	}
	if raw := q.Get("mode"); raw != "" {
		cfg.Mode = raw
	}
	if raw := q.Get("symbol"); raw != "" {
		cfg.Symbol = raw
	}

	return h.Factory.FromJSON(cfg)
}

func parseFloatParam(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing %s parameter", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return v, nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
