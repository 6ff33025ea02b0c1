package app

import (
	"strings"

	"trip_planner/internal/domain"
)

// catalogKey names one ancillary catalog. Selection rules reference
// these constants so a typo cannot silently select nothing; only the
// non-negotiable lookup goes through a derived string.
type catalogKey string

const (
	catWaterpark catalogKey = "waterpark"
	catSpa       catalogKey = "spa"
	catRomantic  catalogKey = "romantic"
	catFamily    catalogKey = "family"
	catAdventure catalogKey = "adventure"
	catBeach     catalogKey = "beach"
	catMountain  catalogKey = "mountain"
	catCulture   catalogKey = "culture"
	catNightlife catalogKey = "nightlife"
)

var ancillaryCatalog = map[catalogKey][]domain.Ancillary{
	catWaterpark: {
		{Title: "Waterpark Day Pass", Description: "Full access to resort waterpark", PriceHint: "From $50/person"},
		{Title: "Waterpark Season Pass", Description: "Unlimited waterpark access", PriceHint: "From $150/person"},
	},
	catSpa: {
		{Title: "Couples Spa Package", Description: "90-minute couples massage", PriceHint: "From $300/couple"},
		{Title: "Spa Day Pass", Description: "Access to spa facilities + treatment", PriceHint: "From $150/person"},
		{Title: "Relaxation Massage", Description: "60-minute full body massage", PriceHint: "From $120/person"},
	},
	catRomantic: {
		{Title: "Champagne Dinner", Description: "Private dinner with champagne", PriceHint: "From $200/couple"},
		{Title: "Romantic Sunset Cruise", Description: "Private boat tour at sunset", PriceHint: "From $250/couple"},
		{Title: "In-Room Romance Package", Description: "Rose petals, champagne, chocolates", PriceHint: "From $150"},
		{Title: "Late Checkout", Description: "Extended checkout until 2pm", PriceHint: "Complimentary"},
	},
	catFamily: {
		{Title: "Kids Club Access", Description: "Supervised activities for children", PriceHint: "From $50/day"},
		{Title: "Family Suite Upgrade", Description: "Upgrade to family-friendly suite", PriceHint: "From $100/night"},
		{Title: "Family Photo Session", Description: "Professional family photos", PriceHint: "From $200"},
	},
	catAdventure: {
		{Title: "Guided Hiking Tour", Description: "Expert-led mountain hiking", PriceHint: "From $80/person"},
		{Title: "Adventure Gear Rental", Description: "Bikes, kayaks, and more", PriceHint: "From $40/day"},
		{Title: "Zipline Experience", Description: "Thrilling zipline adventure", PriceHint: "From $120/person"},
		{Title: "Rock Climbing Session", Description: "Indoor/outdoor climbing", PriceHint: "From $90/person"},
	},
	catBeach: {
		{Title: "Beach Cabana Rental", Description: "Private beach cabana for the day", PriceHint: "From $150/day"},
		{Title: "Snorkeling Excursion", Description: "Guided snorkeling tour", PriceHint: "From $70/person"},
		{Title: "Surf Lesson", Description: "Professional surf instruction", PriceHint: "From $100/person"},
		{Title: "Beachside Dining", Description: "Private beach dinner setup", PriceHint: "From $180/couple"},
	},
	catMountain: {
		{Title: "Ski Equipment Rental", Description: "Full ski/snowboard gear", PriceHint: "From $60/day"},
		{Title: "Ski Lesson Package", Description: "Private or group lessons", PriceHint: "From $120/person"},
		{Title: "Mountain Guide Service", Description: "Expert mountain guide", PriceHint: "From $200/day"},
	},
	catCulture: {
		{Title: "Cultural Tour", Description: "Guided city and culture tour", PriceHint: "From $80/person"},
		{Title: "Museum Pass", Description: "Access to local museums", PriceHint: "From $50/person"},
		{Title: "Cooking Class", Description: "Learn local cuisine", PriceHint: "From $120/person"},
	},
	catNightlife: {
		{Title: "VIP Nightclub Access", Description: "Skip-the-line club entry", PriceHint: "From $100/person"},
		{Title: "Bar Crawl Experience", Description: "Guided bar hopping tour", PriceHint: "From $80/person"},
	},
}

const maxAncillaries = 4

// CurateAncillaries selects paid add-ons for an (intent, hotel) pair.
// All rules are additive; duplicates collapse by title keeping the
// first occurrence, and the result is capped at four entries.
func CurateAncillaries(intent domain.Intent, h domain.Hotel) []domain.Ancillary {
	var picked []domain.Ancillary
	add := func(key catalogKey) {
		picked = append(picked, ancillaryCatalog[key]...)
	}

	// Mood-based.
	if intent.Mood == domain.MoodRomantic || intent.Mood == domain.MoodRelaxing {
		add(catRomantic)
		add(catSpa)
	}
	if intent.Mood == domain.MoodAdventure || intent.Mood == domain.MoodMountain {
		add(catAdventure)
		if intent.Mood == domain.MoodMountain {
			add(catMountain)
		}
	}
	switch intent.Mood {
	case domain.MoodBeach:
		add(catBeach)
	case domain.MoodFamily:
		add(catFamily)
	case domain.MoodCulture:
		add(catCulture)
	case domain.MoodNightlife:
		add(catNightlife)
	}

	// Party-based.
	if intent.Party.Kids != nil && *intent.Party.Kids > 0 {
		add(catFamily)
	}
	if intent.Party.Adults == 2 && intent.Party.Kids == nil {
		add(catRomantic)
	}

	// Hotel experience tags.
	if h.HasExperience(domain.TagWaterpark) {
		add(catWaterpark)
	}
	if h.HasExperience(domain.TagSpa) {
		add(catSpa)
	}
	if h.HasExperience(domain.TagBeach) {
		add(catBeach)
	}
	if h.HasExperience(domain.TagMountain) {
		add(catMountain)
	}

	// Non-negotiables look up catalogs directly by derived key.
	for _, req := range intent.NonNegotiables {
		key := catalogKey(strings.ReplaceAll(strings.ToLower(req), " ", ""))
		if entries, ok := ancillaryCatalog[key]; ok {
			picked = append(picked, entries...)
		}
	}

	// Dedup by title, first occurrence wins, order preserved.
	seen := make(map[string]bool, len(picked))
	out := make([]domain.Ancillary, 0, maxAncillaries)
	for _, a := range picked {
		if seen[a.Title] {
			continue
		}
		seen[a.Title] = true
		out = append(out, a)
		if len(out) == maxAncillaries {
			break
		}
	}
	return out
}
