package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

func newPlanner(p *fakeProvider) *app.PlanService {
	intents := app.NewIntentService(nil) // rule-based extraction only
	sources := app.NewSourceAggregator(p, nil, 0, time.Second, 8)
	return app.NewPlanService(intents, sources)
}

func TestPlanTrip_EndToEnd(t *testing.T) {
	p := &fakeProvider{search: func(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
		switch q.IncludeDomain {
		case "hilton.com":
			return []domain.SearchResult{{
				URL:   "https://www.hilton.com/en/hotels/mlehi-conrad-maldives",
				Title: "Conrad Maldives Rangali Island - Hilton",
				Text:  "beachfront overwater villas, spa, romantic couples retreat",
			}}, nil
		case "marriott.com":
			return []domain.SearchResult{
				{URL: "https://www.marriott.com/search/default.mi", Title: "Search"},
				{
					URL:   "https://www.marriott.com/hotels/travel/mlewi-westin-maldives",
					Title: "The Westin Maldives",
					Text:  "business conference facilities, art gallery",
				},
			}, nil
		}
		return nil, errors.New("provider down") // hyatt contributes nothing
	}}

	plan, err := newPlanner(p).PlanTrip(context.Background(), "Luxury beach vacation in Maldives for 2 adults")
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}

	if plan.Brand != domain.BrandHilton {
		t.Fatalf("brand = %s, want hilton", plan.Brand)
	}
	if !strings.Contains(plan.Rationale, "Hilton") || !strings.Contains(plan.Rationale, "Maldives") {
		t.Fatalf("rationale = %q", plan.Rationale)
	}
	if len(plan.Hotels) != 1 {
		t.Fatalf("hotels = %+v", plan.Hotels)
	}

	h := plan.Hotels[0]
	if h.Hotel.Name != "Conrad Maldives Rangali Island" {
		t.Fatalf("name = %q", h.Hotel.Name)
	}
	// declared luxury band overwrites the provisional price
	if h.Hotel.BasePriceUSD != 1000 {
		t.Fatalf("price = %d, want 1000", h.Hotel.BasePriceUSD)
	}
	// 5 (city) + 3 (beach) + 2 (couples) + 3 (budget)
	if h.Score != 13 {
		t.Fatalf("score = %d, want 13", h.Score)
	}
	if h.BookURL != "https://www.hilton.com/en/hotels/mlehi-conrad-maldives" {
		t.Fatalf("book URL = %q", h.BookURL)
	}
	if len(h.Highlights) == 0 || h.Highlights[0] != "Perfect for beach experiences" {
		t.Fatalf("highlights = %v", h.Highlights)
	}
	if len(h.Ancillaries) == 0 {
		t.Fatalf("expected curated ancillaries")
	}
}

func TestPlanTrip_NoSourcesNoCandidates(t *testing.T) {
	p := &fakeProvider{search: func(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
		return nil, errors.New("provider down")
	}}

	_, err := newPlanner(p).PlanTrip(context.Background(), "Romantic getaway in Paris")
	if !errors.Is(err, domain.ErrNoCandidates) {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
}

func TestPlanTrip_NoLocationKeepsZeroScores(t *testing.T) {
	p := &fakeProvider{search: func(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
		if q.IncludeDomain != "marriott.com" {
			return nil, nil
		}
		return []domain.SearchResult{{
			URL:   "https://www.marriott.com/hotels/travel/abcmc-city-hotel",
			Title: "City Hotel",
			Text:  "convenient downtown stay", // no tag keywords: defaults to relaxing
		}}, nil
	}}

	plan, err := newPlanner(p).PlanTrip(context.Background(), "somewhere nice please")
	if err != nil {
		t.Fatalf("PlanTrip: %v", err)
	}
	if plan.Brand != domain.BrandMarriott {
		t.Fatalf("brand = %s", plan.Brand)
	}
	if strings.Contains(plan.Rationale, " in ") {
		t.Fatalf("rationale should not name a location: %q", plan.Rationale)
	}
}
