package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

// ---- fakes ----

type fakeModel struct {
	doc []byte
	err error
}

func (f *fakeModel) ExtractIntent(ctx context.Context, prompt string) ([]byte, error) {
	return f.doc, f.err
}

// ---- fallback: mood ----

func TestFallbackExtract_Moods(t *testing.T) {
	cases := []struct {
		prompt string
		want   domain.Mood
	}{
		{"we want an adventurous trip", domain.MoodAdventure},
		{"a romantic escape with my partner", domain.MoodRomantic},
		{"something fun for the kids", domain.MoodFamily},
		{"great nightlife please", domain.MoodNightlife},
		{"museums and historic sites", domain.MoodCulture},
		{"lying on the beach all day", domain.MoodBeach},
		{"a ski weekend", domain.MoodMountain},
		{"somewhere nice", domain.MoodRelaxing}, // default
	}
	for _, tc := range cases {
		if got := app.FallbackExtract(tc.prompt).Mood; got != tc.want {
			t.Errorf("%q: mood = %s, want %s", tc.prompt, got, tc.want)
		}
	}
}

func TestFallbackExtract_Party(t *testing.T) {
	in := app.FallbackExtract("a resort for 4 adults and 2 kids")
	if in.Party.Adults != 4 {
		t.Fatalf("adults = %d, want 4", in.Party.Adults)
	}
	if in.Party.Kids == nil || *in.Party.Kids != 2 {
		t.Fatalf("kids = %v, want 2", in.Party.Kids)
	}

	in = app.FallbackExtract("a quiet weekend")
	if in.Party.Adults != 2 || in.Party.Kids != nil {
		t.Fatalf("defaults: adults=%d kids=%v", in.Party.Adults, in.Party.Kids)
	}

	in = app.FallbackExtract("a trip for 2 adults and 0 kids")
	if in.Party.Kids != nil {
		t.Fatalf("zero kids should parse as no kids, got %d", *in.Party.Kids)
	}
}

func TestFallbackExtract_LocationPatterns(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{"Romantic getaway in Paris", "Paris"},
		{"Flying to Paris then to Rome", "Rome"}, // last match wins
		{"Maldives vacation with my wife", "Maldives"},
		{"We are visiting Tokyo soon", "Tokyo"},
		{"BALI sounds great", "BALI"}, // gazetteer with casing recovery
		{"surprise me", ""},
	}
	for _, tc := range cases {
		if got := app.FallbackExtract(tc.prompt).Location; got != tc.want {
			t.Errorf("%q: location = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}

func TestFallbackExtract_Budget(t *testing.T) {
	cases := []struct {
		prompt string
		want   domain.BudgetBand
	}{
		{"cheap and cheerful", domain.BudgetValue},
		{"a luxury resort", domain.BudgetLuxury},
		{"a premium experience", domain.BudgetLuxury}, // luxury's broader set catches premium first
		{"high-end all the way", domain.BudgetLuxury},
		{"whatever works", domain.BudgetMid},
	}
	for _, tc := range cases {
		in := app.FallbackExtract(tc.prompt)
		if in.Budget == nil || *in.Budget != tc.want {
			t.Errorf("%q: budget = %v, want %s", tc.prompt, in.Budget, tc.want)
		}
	}
}

func TestFallbackExtract_NonNegotiables(t *testing.T) {
	in := app.FallbackExtract("needs a waterpark, a spa, and beach front rooms")
	want := []string{"waterpark", "spa", "beachfront"}
	if !reflect.DeepEqual(in.NonNegotiables, want) {
		t.Fatalf("nonNegotiables = %v, want %v", in.NonNegotiables, want)
	}
	if len(in.Interests) != 0 {
		t.Fatalf("fallback must not populate interests, got %v", in.Interests)
	}
}

// ---- model path ----

func TestExtract_ModelDocumentParsed(t *testing.T) {
	doc := []byte(`{
		"mood": "beach",
		"location": "Maldives",
		"party": {"adults": 2},
		"budget": "luxury",
		"nonNegotiables": ["spa"],
		"interests": ["snorkeling"]
	}`)
	svc := app.NewIntentService(&fakeModel{doc: doc})
	in := svc.Extract(context.Background(), "luxury beach trip to the Maldives")

	if in.Mood != domain.MoodBeach || in.Location != "Maldives" {
		t.Fatalf("unexpected intent: %+v", in)
	}
	if in.Budget == nil || *in.Budget != domain.BudgetLuxury {
		t.Fatalf("budget = %v", in.Budget)
	}
	if in.Raw != "luxury beach trip to the Maldives" {
		t.Fatalf("raw prompt not preserved: %q", in.Raw)
	}
}

func TestExtract_ModelDefaults(t *testing.T) {
	svc := app.NewIntentService(&fakeModel{doc: []byte(`{}`)})
	in := svc.Extract(context.Background(), "anything")

	if in.Mood != domain.MoodRelaxing {
		t.Fatalf("mood default = %s", in.Mood)
	}
	if in.Party.Adults != 2 || in.Party.Kids != nil {
		t.Fatalf("party defaults: %+v", in.Party)
	}
	if in.Budget == nil || *in.Budget != domain.BudgetMid {
		t.Fatalf("budget default = %v", in.Budget)
	}
	if in.NonNegotiables == nil || in.Interests == nil {
		t.Fatalf("slices must be empty, not nil")
	}
}

func TestExtract_ZeroKidsMeansNoKids(t *testing.T) {
	svc := app.NewIntentService(&fakeModel{doc: []byte(`{"party":{"adults":2,"kids":0}}`)})
	in := svc.Extract(context.Background(), "weekend away for the two of us")

	if in.Party.Kids != nil {
		t.Fatalf("kids = %d, want nil", *in.Party.Kids)
	}

	// the couples rules must still fire for two adults with zero kids
	h := domain.Hotel{
		BasePriceUSD: 250,
		Suitability:  domain.Suitability{Couples: true},
		Experiences:  []domain.ExperienceTag{domain.TagRelaxing},
	}
	// 3 (relaxing) + 2 (couples) + 3 (budget)
	if got := app.ScoreHotel(h, in); got != 8 {
		t.Fatalf("score = %d, want 8", got)
	}
}

func TestExtract_ModelErrorFallsBack(t *testing.T) {
	svc := app.NewIntentService(&fakeModel{err: errors.New("provider down")})
	in := svc.Extract(context.Background(), "Romantic getaway in Paris")

	if in.Mood != domain.MoodRomantic || in.Location != "Paris" {
		t.Fatalf("expected fallback extraction, got %+v", in)
	}
}

func TestExtract_BadJSONFallsBack(t *testing.T) {
	svc := app.NewIntentService(&fakeModel{doc: []byte("not json at all")})
	in := svc.Extract(context.Background(), "a ski weekend in Aspen")

	if in.Mood != domain.MoodMountain || in.Location != "Aspen" {
		t.Fatalf("expected fallback extraction, got %+v", in)
	}
}
