package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/cloud-ru/unit-economics-go/internal/config"
	"github.com/cloud-ru/unit-economics-go/internal/platform"
	"github.com/cloud-ru/unit-economics-go/internal/report"
	"github.com/cloud-ru/unit-economics-go/internal/tools"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		MaxUnitsSold:        1e7,
		MaxPrice:            1e9,
		MaxCost:             1e9,
		ExportDir:           t.TempDir(),
		CalculatorSignature: "@MaksimovWB",
	}
	exporter := platform.NewExporter(nil, report.NewComposer(cfg.CalculatorSignature), cfg.ExportDir)
	return NewRouter(tools.NewRegistry(cfg, otel.Tracer("test"), exporter))
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func do(t *testing.T, router http.Handler, method, path string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	if rr.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func TestHealthz(t *testing.T) {
	rr, _ := do(t, newTestRouter(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestListTools(t *testing.T) {
	rr, env := do(t, newTestRouter(t), http.MethodGet, "/tools/", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Contains(t, names, tools.ToolCalculate)
	assert.Len(t, names, 4)
}

func TestCallCalculate(t *testing.T) {
	body, err := json.Marshal(tools.ExampleParams())
	require.NoError(t, err)

	rr, env := do(t, newTestRouter(t), http.MethodPost, "/tools/"+tools.ToolCalculate, body)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", env.Status)

	var resp struct {
		Unit struct {
			Revenue float64 `json:"revenue"`
			Taxes   struct {
				Low float64 `json:"low"`
			} `json:"taxes"`
		} `json:"unit"`
		Rendered struct {
			Profitability string `json:"profitability"`
		} `json:"rendered"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.InDelta(t, 382.5, resp.Unit.Revenue, 1e-9)
	assert.InDelta(t, 7.65, resp.Unit.Taxes.Low, 1e-9)
	assert.Equal(t, "3,34%", resp.Rendered.Profitability)
}

func TestCallErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       []byte
		wantStatus int
	}{
		{"unknown tool", "/tools/unknown", []byte(`{}`), http.StatusNotFound},
		{"malformed body", "/tools/" + tools.ToolCalculate, []byte(`{"units_sold":`), http.StatusBadRequest},
		{"validation error", "/tools/" + tools.ToolCalculate, []byte(`{"units_sold":0}`), http.StatusUnprocessableEntity},
		{"empty body", "/tools/" + tools.ToolCalculate, nil, http.StatusUnprocessableEntity},
		{"share without host", "/tools/" + tools.ToolShare, mustJSON(t, tools.ExampleParams()), http.StatusUnprocessableEntity},
	}

	router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := do(t, router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "error", env.Status)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, "/tools/"+tools.ToolExample, nil)

	rr, _ := do(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "tool_calls_total")
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
