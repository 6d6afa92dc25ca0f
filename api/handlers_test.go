/*
handlers_test.go - HTTP API tests

Tests run against the full router so middleware, routing, and handler
behavior are exercised together, using the default grid configuration a
fresh server starts with.
*/
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swkovma/isitworththetime/api"
	"github.com/swkovma/isitworththetime/factory"
	"github.com/swkovma/isitworththetime/worth"
)

func newTestRouter() http.Handler {
	h := api.NewHandler(factory.GridConfigJSON{
		Salary: 100_000,
		Period: "annual",
		Mode:   "money",
		Symbol: "$",
	})
	return api.NewRouter(h)
}

func doRequest(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// =============================================================================
// TABLES
// =============================================================================

func TestListFrequencies(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/tables/frequencies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []api.FrequencyDTO
	decodeJSON(t, rec, &dtos)

	require.Len(t, dtos, 6)
	assert.Equal(t, "50x / day", dtos[0].Label)
	assert.Equal(t, "Yearly", dtos[5].Label)
	for i := 1; i < len(dtos); i++ {
		assert.Greater(t, dtos[i-1].Multiplier, dtos[i].Multiplier,
			"frequencies must descend")
	}
}

func TestListDurations(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/tables/durations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []api.DurationDTO
	decodeJSON(t, rec, &dtos)

	require.Len(t, dtos, 9)
	assert.Equal(t, "1 second", dtos[0].Label)
	assert.Equal(t, "1 day", dtos[8].Label)
	for i := 1; i < len(dtos); i++ {
		assert.Greater(t, dtos[i].Seconds, dtos[i-1].Seconds,
			"durations must ascend")
	}
}

func TestGetConstants(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/tables/constants", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto api.TablesConstantsDTO
	decodeJSON(t, rec, &dto)
	assert.Equal(t, 2000, dto.WorkHoursPerYear)
	assert.Equal(t, 250, dto.WorkDaysPerYear)
}

// =============================================================================
// CELL
// =============================================================================

func TestGetCell_UsesServerDefaults(t *testing.T) {
	// Salary omitted: the configured default ($100k) applies.
	rec := doRequest(t, http.MethodGet, "/api/cell?multiplier=250&seconds=300&period=monthly", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.CellResponse
	decodeJSON(t, rec, &resp)

	assert.Equal(t, 100_000.0, resp.Salary)
	assert.Equal(t, "monthly", resp.Period)
	assert.Equal(t, "$87", resp.Cell.Text)
	assert.Equal(t, string(worth.Tier4), resp.Cell.Tier)
}

func TestGetCell_MissingMultiplier(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/cell?seconds=300", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.ErrorResponse
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Details, "multiplier")
}

func TestGetCell_NonNumericSeconds(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/cell?multiplier=250&seconds=lots", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// GRID
// =============================================================================

func TestGetGrid_Dimensions(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/grid", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto api.GridDTO
	decodeJSON(t, rec, &dto)

	assert.Equal(t, 100_000.0, dto.Salary)
	require.Len(t, dto.Columns, 6)
	require.Len(t, dto.Rows, 9)
	for _, row := range dto.Rows {
		require.Len(t, row.Cells, 6)
	}
}

func TestGetGrid_ZeroSalaryRendersPlaceholders(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/grid?salary=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto api.GridDTO
	decodeJSON(t, rec, &dto)
	for _, row := range dto.Rows {
		for _, cell := range row.Cells {
			assert.Equal(t, worth.Placeholder, cell.Text)
			assert.Equal(t, "", cell.Tier)
		}
	}
}

func TestGetGrid_UnknownPeriod(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/grid?period=weekly", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.ErrorResponse
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Details, "unknown period")
}

func TestComputeGrid_FromBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/grid",
		`{"salary": 100000, "period": "monthly"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto api.GridDTO
	decodeJSON(t, rec, &dto)

	// Row 4 is "5 minutes", column 2 is "Daily".
	assert.Equal(t, "5 minutes", dto.Rows[4].Duration.Label)
	assert.Equal(t, "Daily", dto.Columns[2].Label)
	assert.Equal(t, "$87", dto.Rows[4].Cells[2].Text)
}

func TestComputeGrid_MalformedBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/grid", `{"salary":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeGrid_UnknownMode(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/grid", `{"mode": "points"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestListScenarios(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/scenarios", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []api.ScenarioDTO
	decodeJSON(t, rec, &dtos)
	require.NotEmpty(t, dtos)

	ids := make(map[string]bool)
	for _, s := range dtos {
		ids[s.ID] = true
	}
	assert.True(t, ids["engineer-monthly"])
	assert.True(t, ids["time-saved"])
}

func TestGetScenarioGrid(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/scenarios/engineer-monthly", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto api.GridDTO
	decodeJSON(t, rec, &dto)
	assert.Equal(t, "monthly", dto.Period)
	assert.Equal(t, "$87", dto.Rows[4].Cells[2].Text)
}

func TestGetScenarioGrid_Unknown(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/scenarios/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
