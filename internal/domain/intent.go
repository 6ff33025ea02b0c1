package domain

import (
	"math"
	"strings"
)

// Mood is the primary experience a traveler is after.
type Mood string

const (
	MoodAdventure Mood = "adventure"
	MoodRelaxing  Mood = "relaxing"
	MoodRomantic  Mood = "romantic"
	MoodFamily    Mood = "family"
	MoodNightlife Mood = "nightlife"
	MoodCulture   Mood = "culture"
	MoodBeach     Mood = "beach"
	MoodMountain  Mood = "mountain"
)

var Moods = []Mood{
	MoodAdventure, MoodRelaxing, MoodRomantic, MoodFamily,
	MoodNightlife, MoodCulture, MoodBeach, MoodMountain,
}

// ParseMood maps an arbitrary string onto the closed mood set.
// Unknown values resolve to MoodRelaxing.
func ParseMood(s string) Mood {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Moods {
		if m == known {
			return m
		}
	}
	return MoodRelaxing
}

type BudgetBand string

const (
	BudgetValue   BudgetBand = "value"
	BudgetMid     BudgetBand = "mid"
	BudgetPremium BudgetBand = "premium"
	BudgetLuxury  BudgetBand = "luxury"
)

// PriceRange describes a budget band's nightly rate window in USD.
type PriceRange struct {
	Min     int
	Max     int
	Typical int
}

// BudgetBands is the single source of truth for band pricing.
var BudgetBands = map[BudgetBand]PriceRange{
	BudgetValue:   {Min: 0, Max: 150, Typical: 100},
	BudgetMid:     {Min: 150, Max: 350, Typical: 250},
	BudgetPremium: {Min: 350, Max: 700, Typical: 525},
	BudgetLuxury:  {Min: 700, Max: math.MaxInt32, Typical: 1000},
}

// ParseBudget maps an arbitrary string onto the closed band set.
// Unknown values resolve to BudgetMid.
func ParseBudget(s string) BudgetBand {
	b := BudgetBand(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := BudgetBands[b]; ok {
		return b
	}
	return BudgetMid
}

type Party struct {
	Adults int  `json:"adults"`
	Kids   *int `json:"kids,omitempty"`
}

type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Intent is the structured form of a free-text travel request.
// Mood, Location and Party.Adults are always populated, either by
// extraction or by defaults. Immutable after creation.
type Intent struct {
	Raw            string      `json:"raw"`
	Mood           Mood        `json:"mood"`
	Location       string      `json:"location"`
	Party          Party       `json:"party"`
	Dates          *DateRange  `json:"dates,omitempty"`
	Budget         *BudgetBand `json:"budget,omitempty"`
	NonNegotiables []string    `json:"nonNegotiables,omitempty"`
	Interests      []string    `json:"interests,omitempty"`
}

// HasLocation reports whether the traveler named a destination.
func (i Intent) HasLocation() bool {
	return strings.TrimSpace(i.Location) != ""
}
