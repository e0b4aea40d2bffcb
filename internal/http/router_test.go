package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "touristguide/internal/config"
	h "touristguide/internal/http/handlers"
	"touristguide/internal/itinerary"
	"touristguide/internal/logger"
	"touristguide/internal/repositories"
	"touristguide/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewTestLogger(t)
	ids := 0
	hs := &h.Handlers{
		Trips: services.TripService{
			Synthesizer: itinerary.New(itinerary.WithRand(rand.New(rand.NewPCG(7, 11)))),
			History:     repositories.NewMemoryHistoryRepository(2),
			Itineraries: repositories.NewItineraryCache(time.Minute),
			Logger:      log,
			MaxTripDays: 30,
			NewID: func() string {
				ids++
				return fmt.Sprintf("it-%d", ids)
			},
		},
		Translation: services.TranslationService{},
		Logger:      log,
	}
	return NewRouter(intconfig.Env{CORSAllowedOrigins: []string{"*"}}, hs, log)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, stdhttp.MethodGet, "/", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"AI Tourist Guide API is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, r, stdhttp.MethodGet, "/api/health", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","history_store":"memory"}`, w.Body.String())
}

func TestRoutesListsAPI(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, stdhttp.MethodGet, "/api/routes", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	body := decode[struct {
		Routes []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"routes"`
	}](t, w)

	var paths []string
	for _, rt := range body.Routes {
		paths = append(paths, rt.Method+" "+rt.Path)
	}
	assert.Contains(t, paths, "POST /api/plan-trip")
	assert.Contains(t, paths, "GET /api/itineraries/:id/ics")
	assert.Contains(t, paths, "GET /metrics")
}

func TestPlanTripFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, stdhttp.MethodPost, "/api/plan-trip", `{"place":"paris","budget":100000,"days":2,"number_of_people":2}`)
	require.Equal(t, stdhttp.StatusOK, w.Code, w.Body.String())

	doc := decode[map[string]any](t, w)
	assert.Equal(t, "it-1", doc["id"])
	summary := doc["trip_summary"].(map[string]any)
	assert.Equal(t, "Paris", summary["destination"])
	assert.Equal(t, "2 Days", summary["duration"])
	assert.Equal(t, "Moderate, Luxury", summary["style"])
	assert.Equal(t, "INR 100000.0", summary["total_budget"])
	assert.Len(t, doc["days"], 2)
	assert.Len(t, doc["hotel_options"], 3)

	w = do(t, r, stdhttp.MethodGet, "/api/itineraries/it-1", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Equal(t, "it-1", decode[map[string]any](t, w)["id"])

	w = do(t, r, stdhttp.MethodGet, "/api/history", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	history := decode[[]map[string]any](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, "paris", history[0]["place"])
}

func TestHistoryKeepsNewestEntries(t *testing.T) {
	r := newTestRouter(t)

	for _, place := range []string{"rome", "oslo", "lima"} {
		w := do(t, r, stdhttp.MethodPost, "/api/plan-trip", `{"place":"`+place+`","budget":5000,"days":1,"number_of_people":1}`)
		require.Equal(t, stdhttp.StatusOK, w.Code)
	}

	w := do(t, r, stdhttp.MethodGet, "/api/history", "")
	history := decode[[]map[string]any](t, w)
	require.Len(t, history, 2)
	assert.Equal(t, "oslo", history[0]["place"])
	assert.Equal(t, "lima", history[1]["place"])
}

func TestPlanTripErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name, body, code string
		status           int
	}{
		{"malformed", `{"place":`, "invalid_payload", stdhttp.StatusBadRequest},
		{"empty", "", "invalid_payload", stdhttp.StatusBadRequest},
		{"wrong type", `{"place":"x","days":"two"}`, "invalid_payload", stdhttp.StatusBadRequest},
		{"no place", `{"budget":100,"days":1,"number_of_people":1}`, "validation_error", stdhttp.StatusBadRequest},
		{"zero people", `{"place":"x","budget":100,"days":1,"number_of_people":0}`, "validation_error", stdhttp.StatusBadRequest},
		{"too long", `{"place":"x","budget":100,"days":31,"number_of_people":1}`, "validation_error", stdhttp.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, stdhttp.MethodPost, "/api/plan-trip", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			body := decode[h.ErrorResponse](t, w)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
			assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
		})
	}
}

func TestUnknownItinerary(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/itineraries/missing", "/api/itineraries/missing/pdf", "/api/itineraries/missing/ics"} {
		w := do(t, r, stdhttp.MethodGet, path, "")
		require.Equal(t, stdhttp.StatusNotFound, w.Code, path)
		assert.Equal(t, "not_found", decode[h.ErrorResponse](t, w).Code)
	}
}

func TestExports(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, stdhttp.MethodPost, "/api/plan-trip", `{"place":"kyoto","budget":20000,"days":2,"number_of_people":1}`)
	require.Equal(t, stdhttp.StatusOK, w.Code)

	w = do(t, r, stdhttp.MethodGet, "/api/itineraries/it-1/pdf", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="ITINERARY_Kyoto_it-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = do(t, r, stdhttp.MethodGet, "/api/itineraries/it-1/ics?start=2026-12-24", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))
	assert.Equal(t, `attachment; filename="ITINERARY_Kyoto_2026-12-24.ics"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "DTSTART:20261225T")

	w = do(t, r, stdhttp.MethodGet, "/api/itineraries/it-1/ics?start=24-12-2026", "")
	require.Equal(t, stdhttp.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[h.ErrorResponse](t, w).Code)
}

func TestNearbyAndTranslate(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, stdhttp.MethodPost, "/api/nearby", `{"latitude":48.8566,"longitude":2.3522}`)
	require.Equal(t, stdhttp.StatusOK, w.Code)
	nearby := decode[map[string]any](t, w)
	assert.Len(t, nearby["places"], 4)

	w = do(t, r, stdhttp.MethodPost, "/api/nearby", `{"latitude":91,"longitude":2}`)
	assert.Equal(t, stdhttp.StatusBadRequest, w.Code)

	w = do(t, r, stdhttp.MethodPost, "/api/translate", `{"text":"Hello","source_lang":"en","target_lang":"fr"}`)
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"original":"Hello","translated":"bonjour","source":"en","target":"fr"}`, w.Body.String())
}

func TestNoRouteAndCORS(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, stdhttp.MethodGet, "/api/nope", "")
	require.Equal(t, stdhttp.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", decode[map[string]any](t, w)["error"])

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, stdhttp.MethodGet, "/", "")

	w := do(t, r, stdhttp.MethodGet, "/metrics", "")
	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
