// README: Handler tests for intent, plan, recommend and trip endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsense/internal/http/handlers"
	"tripsense/internal/modules/catalog"
	"tripsense/internal/modules/events"
	"tripsense/internal/modules/intent"
	"tripsense/internal/modules/planner"
	"tripsense/internal/modules/transport"
	"tripsense/internal/service"
	"tripsense/internal/types"
)

type stubAdvisor struct {
	advice service.Advice
	trip   service.TripAdvice
	err    error

	sawDeadline bool
}

func (s *stubAdvisor) Recommend(ctx context.Context, _ string) (service.Advice, error) {
	_, s.sawDeadline = ctx.Deadline()
	return s.advice, s.err
}

func (s *stubAdvisor) PlanTrip(ctx context.Context, _ string) (service.TripAdvice, error) {
	_, s.sawDeadline = ctx.Deadline()
	return s.trip, s.err
}

func buildTestRouter(advisor handlers.Advisor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/intent", handlers.NewIntentHandler(intent.NewService()).Parse)
	r.POST("/api/plan", handlers.NewPlanHandler(planner.NewService()).Build)
	ah := handlers.NewAdvisorHandler(advisor, time.Second)
	r.POST("/api/recommend", ah.Recommend)
	r.POST("/api/trip", ah.Trip)
	return r
}

func doRequest(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestIntent_OK(t *testing.T) {
	r := buildTestRouter(&stubAdvisor{})
	w := doRequest(r, "/api/intent", `{"query":"weekend trip to goa under 10k"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	in := body["intent"].(map[string]any)
	assert.Equal(t, "Goa", in["destination"])
	assert.Equal(t, float64(2), in["duration"])
	assert.Equal(t, []any{"budget", "time"}, in["constraints"])
	assert.Nil(t, in["month"])
}

func TestIntent_BadRequests(t *testing.T) {
	r := buildTestRouter(&stubAdvisor{})
	for _, body := range []string{``, `{}`, `{"query":""}`, `{"query":"   "}`, `{"query":42}`, `[1,2]`} {
		w := doRequest(r, "/api/intent", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		got := decode(t, w)
		assert.Equal(t, false, got["success"])
		assert.NotEmpty(t, got["error"])
	}
}

func TestPlan_OK(t *testing.T) {
	r := buildTestRouter(&stubAdvisor{})
	w := doRequest(r, "/api/plan", `{"intent":{"destination":"Goa","duration":2,"budget":{"max":20000,"currency":"INR"},"constraints":["budget"]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Plan    planner.TripPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Plan.Duration)
	assert.Equal(t, int64(20000), resp.Plan.TotalBudget)
	assert.Equal(t, planner.BudgetSplit{Stay: 9000, Travel: 7000, Food: 4000}, resp.Plan.BudgetSplit)
	assert.Len(t, resp.Plan.Itinerary, 2)
	assert.Equal(t, "Gokarna", resp.Plan.Alternatives[0].Destination)
}

func TestPlan_EmptyIntentUsesDefaults(t *testing.T) {
	r := buildTestRouter(&stubAdvisor{})
	w := doRequest(r, "/api/plan", `{"intent":{}}`)
	require.Equal(t, http.StatusOK, w.Code)
	plan := decode(t, w)["plan"].(map[string]any)
	assert.Equal(t, float64(3), plan["duration"])
	assert.Equal(t, float64(15000), plan["totalBudget"])
}

func TestPlan_BadRequests(t *testing.T) {
	r := buildTestRouter(&stubAdvisor{})
	cases := []string{
		`{}`,
		`{"intent":null}`,
		`{"intent":"goa"}`,
		`{"intent":[1]}`,
		`{"intent":{"duration":"three"}}`,
		`{"intent":{"duration":0}}`,
		`{"intent":{"duration":61}}`,
		`not json`,
	}
	for _, body := range cases {
		w := doRequest(r, "/api/plan", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestRecommend_OK(t *testing.T) {
	advisor := &stubAdvisor{advice: service.Advice{
		Recommendation: transport.Recommendation{
			Winner:      transport.ScoredOption{Option: transport.Option{Key: "train", Label: "Express", Price: 900}},
			Explanation: "Express is the recommended way to travel",
		},
	}}
	r := buildTestRouter(advisor)
	w := doRequest(r, "/api/recommend", `{"destination":"Goa"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	rec := body["recommendation"].(map[string]any)
	assert.Equal(t, "train", rec["winner"].(map[string]any)["key"])
	assert.Contains(t, body, "events")
	assert.True(t, advisor.sawDeadline)
}

func TestRecommend_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{transport.ErrNoOptions, http.StatusNotFound},
		{fmt.Errorf("gather: %w", catalog.ErrSourceUnavailable), http.StatusBadGateway},
		{fmt.Errorf("gather: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := buildTestRouter(&stubAdvisor{err: tc.err})
		w := doRequest(r, "/api/recommend", `{"destination":"Goa"}`)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
		assert.Equal(t, false, decode(t, w)["success"])
	}

	r := buildTestRouter(&stubAdvisor{err: fmt.Errorf("secret dsn leaked")})
	w := doRequest(r, "/api/recommend", `{"destination":"Goa"}`)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestRecommend_MissingDestination(t *testing.T) {
	r := buildTestRouter(&stubAdvisor{})
	for _, body := range []string{`{}`, `{"destination":"  "}`, `{"destination":7}`} {
		w := doRequest(r, "/api/recommend", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestTrip_EndToEndWithSeedCatalog(t *testing.T) {
	seed, err := catalog.NewSeedSource()
	require.NoError(t, err)
	r := buildTestRouter(service.NewAdvisor(catalog.NewService(seed)))

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]string{"query": "family trip to jaipur for 3 days"}))
	w := doRequest(r, "/api/trip", buf.String())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	trip := decode(t, w)["trip"].(map[string]any)
	assert.Equal(t, "Jaipur", trip["intent"].(map[string]any)["destination"])
	require.Contains(t, trip, "transport")
	events := trip["transport"].(map[string]any)["events"].(map[string]any)
	assert.NotNil(t, events["eventSummary"])
}

func TestTrip_OversizedDurationRejected(t *testing.T) {
	seed, err := catalog.NewSeedSource()
	require.NoError(t, err)
	r := buildTestRouter(service.NewAdvisor(catalog.NewService(seed)))

	for _, query := range []string{"goa for 100000000 days", "goa for 61 days", "goa for 0 days"} {
		w := doRequest(r, "/api/trip", fmt.Sprintf(`{"query":%q}`, query))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "duration out of range")
	}
}

func TestTrip_TransportFailureStillReturnsPlan(t *testing.T) {
	r := buildTestRouter(service.NewAdvisor(catalog.NewService(&emptySource{})))
	w := doRequest(r, "/api/trip", `{"query":"3 days in goa"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	trip := decode(t, w)["trip"].(map[string]any)
	assert.NotContains(t, trip, "transport")
	assert.Equal(t, "no transport options available for this destination", trip["transportError"])
	assert.Len(t, trip["plan"].(map[string]any)["itinerary"], 3)
}

type emptySource struct{}

func (emptySource) ListOptions(context.Context, types.Mode) ([]transport.Option, error) {
	return nil, nil
}

func (emptySource) ListEvents(context.Context) ([]events.Record, error) {
	return nil, nil
}
