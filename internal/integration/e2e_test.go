package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"trip_planner/internal/adapters/exa"
	httpserver "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/redisad"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

// stubExa serves canned brand-site results keyed by the requested
// include-domain, mimicking the content-search API shape.
func stubExa(t *testing.T, byDomain map[string][]map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req struct {
			IncludeDomains []string `json:"includeDomains"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad search request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		results := []map[string]string{}
		if len(req.IncludeDomains) == 1 {
			results = byDomain[req.IncludeDomains[0]]
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
}

func newAPI(t *testing.T, exaURL string, rateLimit int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	searchClient, err := exa.New(exaURL, "test-key", 50)
	if err != nil {
		t.Fatalf("exa.New: %v", err)
	}

	intents := app.NewIntentService(nil) // rule-based extraction
	sources := app.NewSourceAggregator(searchClient, cache, time.Minute, time.Second, 8)
	planner := app.NewPlanService(intents, sources)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		P:  planner,
		RL: httpserver.NewRateLimiter(rateLimit, time.Minute),
	})
	return srv.Mux(), mr
}

func postPlan(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPlanEndpoint_FullPipeline(t *testing.T) {
	exaSrv := stubExa(t, map[string][]map[string]string{
		"hilton.com": {{
			"url":   "https://www.hilton.com/en/hotels/mlehi-conrad-maldives",
			"title": "Conrad Maldives Rangali Island - Hilton",
			"text":  "beachfront overwater villas, spa, romantic couples retreat",
		}},
	})
	defer exaSrv.Close()

	h, mr := newAPI(t, exaSrv.URL, 100)

	rec := postPlan(t, h, `{"prompt":"Luxury beach vacation in Maldives for 2 adults"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var plan domain.PlanOption
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.Brand != domain.BrandHilton {
		t.Fatalf("brand = %s", plan.Brand)
	}
	if len(plan.Hotels) != 1 || plan.Hotels[0].BookURL == "" {
		t.Fatalf("hotels = %+v", plan.Hotels)
	}
	if !strings.Contains(plan.Rationale, "Maldives") {
		t.Fatalf("rationale = %q", plan.Rationale)
	}

	// brand searches land in the cache under the normalized location
	if _, err := mr.Get("search:hilton:maldives"); err != nil {
		t.Fatalf("expected cached hilton search: %v (keys: %v)", err, mr.Keys())
	}

	// a second identical request is served from cache with nothing lost
	rec = postPlan(t, h, `{"prompt":"Luxury beach vacation in Maldives for 2 adults"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("cached request: %d", rec.Code)
	}
	var cached domain.PlanOption
	if err := json.Unmarshal(rec.Body.Bytes(), &cached); err != nil {
		t.Fatalf("decode cached plan: %v", err)
	}
	if len(cached.Hotels) != 1 || cached.Hotels[0].BookURL != plan.Hotels[0].BookURL {
		t.Fatalf("cached plan degraded: %+v", cached.Hotels)
	}
}

func TestPlanEndpoint_NoCandidates(t *testing.T) {
	exaSrv := stubExa(t, nil) // every brand search comes back empty
	defer exaSrv.Close()

	h, _ := newAPI(t, exaSrv.URL, 100)

	rec := postPlan(t, h, `{"prompt":"Romantic getaway in Paris"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %q", ct)
	}
	var p struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if !strings.Contains(p.Detail, "No hotels found") {
		t.Fatalf("detail = %q", p.Detail)
	}
}

func TestPlanEndpoint_BadRequest(t *testing.T) {
	exaSrv := stubExa(t, nil)
	defer exaSrv.Close()

	h, _ := newAPI(t, exaSrv.URL, 100)

	if rec := postPlan(t, h, `{"prompt":"   "}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("blank prompt: %d", rec.Code)
	}
	if rec := postPlan(t, h, `{not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: %d", rec.Code)
	}
}

func TestPlanEndpoint_RateLimited(t *testing.T) {
	exaSrv := stubExa(t, nil)
	defer exaSrv.Close()

	h, _ := newAPI(t, exaSrv.URL, 2)

	postPlan(t, h, `{"prompt":"x"}`)
	postPlan(t, h, `{"prompt":"x"}`)
	rec := postPlan(t, h, `{"prompt":"x"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}
