package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/config"
	"swapnet-ops/internal/metrics"
	"swapnet-ops/internal/recommend"
	"swapnet-ops/internal/sim"
	"swapnet-ops/internal/station"
	"swapnet-ops/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	handler http.Handler
	store   *store.Store
	timers  []func()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	seed, err := config.DefaultSeed()
	require.NoError(t, err)

	f := &fixture{store: store.New(seed)}
	runner := sim.NewRunner(f.store, nil, time.Second)
	runner.SetAfterFunc(func(_ time.Duration, fn func()) { f.timers = append(f.timers, fn) })

	m := metrics.New()
	m.RegisterNetwork(f.store)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(
		access.ForAdmin(f.store, runner),
		access.ForOperator(f.store),
		access.ForUser(f.store, recommend.DefaultLocations()),
		m, log,
	)
	f.handler = srv.Handler()
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
}

func TestReadsForEveryRole(t *testing.T) {
	f := newFixture(t)
	for _, role := range []string{"admin", "operator", "user"} {
		t.Run(role, func(t *testing.T) {
			w := f.do(t, http.MethodGet, "/api/"+role+"/stations", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[[]station.Station](t, w), 5)

			w = f.do(t, http.MethodGet, "/api/"+role+"/operational?status=offline", "")
			require.Equal(t, http.StatusOK, w.Code)
			offline := decode[[]station.OperationalState](t, w)
			require.Len(t, offline, 1)
			assert.Equal(t, "ST-005", offline[0].StationID)

			w = f.do(t, http.MethodGet, "/api/"+role+"/summary", "")
			require.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestUnknownStationIs404(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/user/stations/ST-999", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode[errorResponse](t, w)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.Code)
	assert.Equal(t, "ST-999", body.Details["id"])
	assert.Equal(t, "/api/user/stations/ST-999", body.Path)
	assert.NotEmpty(t, body.RequestID)
}

func TestAdminUpdateStation(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPatch, "/api/admin/stations/ST-001", `{"queueLength": 2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[station.Station](t, w).QueueLength)

	st, _ := f.store.StationByID("ST-002")
	assert.Equal(t, 11, st.QueueLength)

	w = f.do(t, http.MethodPatch, "/api/admin/stations/ST-999", `{"queueLength": 2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRejectsBadPayload(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/admin/stations", `{"id": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errorResponse](t, w).Code)

	w = f.do(t, http.MethodPatch, "/api/admin/operational/ST-001", `{"status": "melting"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAddAndRemoveStation(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/admin/stations", `{"id":"ST-006","name":"Depot","totalChargers":4,"activeChargers":4}`)
	require.Equal(t, http.StatusCreated, w.Code)
	_, ok := f.store.OperationalStateByID("ST-006")
	assert.True(t, ok)

	// a second record with the same id is appended, not rejected
	w = f.do(t, http.MethodPost, "/api/admin/stations", `{"id":"ST-006","name":"Depot East"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.store.Stations(), 7)

	w = f.do(t, http.MethodPost, "/api/admin/stations", `{"name":"Nameless"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodDelete, "/api/admin/stations/ST-006", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, f.store.Stations(), 5)
	w = f.do(t, http.MethodDelete, "/api/admin/stations/ST-006", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecentFailuresHoursValidation(t *testing.T) {
	f := newFixture(t)
	for _, hours := range []string{"0", "-2", "soon", "NaN"} {
		w := f.do(t, http.MethodGet, "/api/admin/failures?hours="+hours, "")
		require.Equal(t, http.StatusBadRequest, w.Code, "hours=%s", hours)
		assert.Equal(t, "VALIDATION_ERROR", decode[errorResponse](t, w).Code)
	}
	w := f.do(t, http.MethodGet, "/api/admin/failures?hours=1000000", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOperatorCannotReachAdminRoutes(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPatch, "/api/operator/stations/ST-001", `{"queueLength": 0}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.do(t, http.MethodPost, "/api/user/maintenance", `{"title":"x","stationId":"ST-001"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	st, _ := f.store.StationByID("ST-001")
	assert.Equal(t, 4, st.QueueLength)
}

func TestUnknownRole(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/root/stations", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Message, "unknown role")
}

func TestOperatorMaintenanceFlow(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPatch, "/api/operator/maintenance/MA-001", `{"status":"acknowledged"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/admin/maintenance?status=acknowledged", "")
	require.Equal(t, http.StatusOK, w.Code)
	var ids []string
	for _, a := range decode[[]station.MaintenanceAction](t, w) {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{"MA-001", "MA-002"}, ids)

	w = f.do(t, http.MethodPatch, "/api/operator/maintenance/MA-001", `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do(t, http.MethodPatch, "/api/operator/maintenance/MA-999", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/api/operator/maintenance", `{"title":"Swap fuse","stationId":"ST-001","priority":"low"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[station.MaintenanceAction](t, w)
	assert.Equal(t, station.ActionPending, created.Status)
	assert.Equal(t, "Downtown Hub", created.StationName)
}

func TestOperatorAcknowledgeAndRecommendations(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/operator/failures/FAIL-001/acknowledge", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(t, http.MethodPost, "/api/operator/failures/FAIL-999/acknowledge", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPatch, "/api/operator/recommendations/REC-001", `{"status":"dismissed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do(t, http.MethodPatch, "/api/operator/recommendations/REC-001", `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/user/recommendations?active=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	active := decode[[]station.NetworkRecommendation](t, w)
	require.Len(t, active, 1)
	assert.Equal(t, "REC-002", active[0].ID)
}

func TestSimulationLifecycle(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/admin/simulation", `{"kind":"counterfactual"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, station.SimRunning, decode[station.SimulationState](t, w).Status)

	require.Len(t, f.timers, 1)
	f.timers[0]()

	w = f.do(t, http.MethodGet, "/api/admin/simulation", "")
	done := decode[station.SimulationState](t, w)
	assert.Equal(t, station.SimCompleted, done.Status)
	assert.Equal(t, "counterfactual", done.Output["scenario"])

	w = f.do(t, http.MethodDelete, "/api/admin/simulation", "")
	assert.Equal(t, station.SimIdle, decode[station.SimulationState](t, w).Status)

	w = f.do(t, http.MethodPost, "/api/admin/simulation", `{"kind":"meteor"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, station.SimIdle, f.store.Simulation().Status)
}

func TestSwapRecommendations(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/user/swap-recommendations?origin=loc1&destination=loc3&sort=waitTime", "")
	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[recommend.Recommendation](t, w)
	assert.Equal(t, "loc1-loc3", rec.RouteID)
	require.Len(t, rec.RecommendedStations, 5)
	for i := 1; i < len(rec.RecommendedStations); i++ {
		assert.LessOrEqual(t, rec.RecommendedStations[i-1].EstimatedWaitTime, rec.RecommendedStations[i].EstimatedWaitTime)
	}

	w = f.do(t, http.MethodGet, "/api/user/swap-recommendations?origin=nowhere&destination=loc3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.do(t, http.MethodGet, "/api/user/swap-recommendations?origin=loc1&destination=loc3&sort=vibes", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do(t, http.MethodGet, "/api/user/swap-recommendations?origin=loc1&destination=loc3&maxWait=soon", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverviewPage(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Swap Network Overview")
	assert.Contains(t, w.Body.String(), "ST-005")
	assert.Contains(t, w.Body.String(), "FAIL-002")
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPatch, "/api/admin/stations/ST-001", `{"queueLength": 1}`)

	w := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `swapnet_http_requests_total{method="PATCH",path="/api/admin/stations/:id",status="200"} 1`)
	assert.Contains(t, body, `swapnet_store_actions_total{action="admin/updateStationConfig",matched="true",role="admin"} 1`)
	assert.Contains(t, body, "swapnet_network_chargers_total")
}
