package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

// PlanService runs the full intent-to-plan pipeline.
type PlanService struct {
	intents *IntentService
	sources *SourceAggregator
}

func NewPlanService(intents *IntentService, sources *SourceAggregator) *PlanService {
	return &PlanService{intents: intents, sources: sources}
}

// PlanTrip converts a free-text prompt into a single-brand plan. It
// fails only with domain.ErrNoCandidates or domain.ErrNoBrandCandidates;
// extraction and per-source failures are recovered internally.
func (s *PlanService) PlanTrip(ctx context.Context, prompt string) (domain.PlanOption, error) {
	intent := s.intents.Extract(ctx, prompt)
	log.Info().
		Str("mood", string(intent.Mood)).
		Str("location", intent.Location).
		Int("adults", intent.Party.Adults).
		Msg("intent extracted")

	hotels := s.sources.Search(ctx, intent.Location)

	// Source text rarely carries real nightly rates; when the caller
	// declared a band, force prices to the band's typical value.
	if intent.Budget != nil {
		price := domain.BudgetBands[*intent.Budget].Typical
		for i := range hotels {
			hotels[i].BasePriceUSD = price
		}
	}

	scored := make([]domain.ScoredHotel, len(hotels))
	for i, h := range hotels {
		scored[i] = domain.ScoredHotel{Hotel: h, Score: ScoreHotel(h, intent)}
	}

	filtered := FilterRanked(scored, intent.HasLocation())
	if len(filtered) == 0 {
		observability.ObservePlan("no_candidates")
		return domain.PlanOption{}, domain.ErrNoCandidates
	}

	// Brand strength is judged over the filtered set.
	brand := SelectBestBrand(filtered)

	brandHotels := make([]domain.ScoredHotel, 0, 3)
	for _, sh := range filtered { // already sorted by score
		if sh.Hotel.Brand != brand {
			continue
		}
		brandHotels = append(brandHotels, sh)
		if len(brandHotels) == 3 {
			break
		}
	}
	if len(brandHotels) == 0 {
		observability.ObservePlan("no_brand_candidates")
		return domain.PlanOption{}, domain.ErrNoBrandCandidates
	}

	plan := domain.PlanOption{
		Brand:     brand,
		Rationale: rationale(brand, intent),
		Hotels:    make([]domain.PlanHotel, 0, len(brandHotels)),
	}
	for _, sh := range brandHotels {
		bookURL := sh.Hotel.BookURL
		if bookURL == "" {
			bookURL = BrandDeepLink(sh.Hotel)
		}
		plan.Hotels = append(plan.Hotels, domain.PlanHotel{
			Hotel:       sh.Hotel,
			Score:       sh.Score,
			Highlights:  Highlights(sh.Hotel, intent),
			Ancillaries: CurateAncillaries(intent, sh.Hotel),
			BookURL:     bookURL,
		})
	}

	observability.ObservePlan("ok")
	return plan, nil
}

func rationale(brand domain.Brand, intent domain.Intent) string {
	name := strings.ToUpper(string(brand)[:1]) + string(brand)[1:]
	msg := fmt.Sprintf("Selected %s based on your preferences for %s experiences", name, intent.Mood)
	if intent.HasLocation() {
		msg += fmt.Sprintf(" in %s", intent.Location)
	}
	return msg + "."
}
