package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/cloud-ru/smb-finance-go/internal/config"
	"github.com/cloud-ru/smb-finance-go/internal/logging"
	"github.com/cloud-ru/smb-finance-go/internal/projection"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	d := projection.DefaultAssumptions()
	cfg := &config.Config{
		MaxPrincipal:      1e12,
		MaxCapacity:       1e12,
		MaxMonths:         600,
		MaxRate:           500,
		MaxROI:            1000,
		MaxHorizon:        60,
		DefaultHorizon:    12,
		MaxTransactions:   1000,
		PriceAdjustment:   d.MonthlyPriceAdjustment,
		CostAdjustment:    d.MonthlyCostAdjustment,
		GeneralInflation:  d.MonthlyGeneralInflation,
		EfficiencyGain:    d.MonthlyEfficiencyGain,
		DevaluationExpect: d.DevaluationExpectation,
	}
	s := NewServer(cfg, otel.Tracer("test"), logging.NewWithOutput("error", io.Discard))
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDIsPropagated(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, id)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
}

func TestListTools(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/tools")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Tools, 5)
}

func TestCallTool(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/tools/loan_schedule_french",
		`{"principal": 100000, "annual_rate_percent": 12, "months": 12}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Tool   string `json:"tool"`
		Result struct {
			Summary struct {
				MonthlyPayment float64 `json:"monthly_payment"`
			} `json:"summary"`
			Schedule []json.RawMessage `json:"schedule"`
		} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "loan_schedule_french", body.Tool)
	assert.Len(t, body.Result.Schedule, 12)
	assert.InDelta(t, 8884.88, body.Result.Summary.MonthlyPayment, 0.01)
}

func TestCallToolErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown tool", "/api/tools/deposit", `{}`, http.StatusNotFound},
		{"malformed json", "/api/tools/loan_schedule_french", `{"principal":`, http.StatusBadRequest},
		{"validation", "/api/tools/loan_schedule_french", `{"principal": -1, "annual_rate_percent": 12, "months": 12}`, http.StatusBadRequest},
		{"bad transaction", "/api/tools/financial_projection", `{"transactions": [{"date": "bad", "amount": 1, "kind": "income"}]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	post(t, ts.URL+"/api/tools/loan_schedule_german", `{"principal": 1000, "annual_rate_percent": 10, "months": 6}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tool_calls_total")
	assert.Contains(t, string(data), "http_request_duration_seconds")
}
