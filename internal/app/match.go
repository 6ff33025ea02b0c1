package app

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"trip_planner/internal/domain"
)

/********** location normalization & fuzzy matching **********/

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// normalizeLocation lowercases, strips punctuation, and collapses
// whitespace so "Malé," and "male" compare equal.
func normalizeLocation(loc string) string {
	s := strings.ToLower(strings.TrimSpace(loc))
	s = punctRe.ReplaceAllString(s, "")
	return wsRe.ReplaceAllString(s, " ")
}

// fuzzyMatch compares two location strings after normalization: equal,
// one containing the other, or every word (length >2) of one having a
// substring-superset counterpart in the other. Empty strings never
// match anything.
func fuzzyMatch(a, b string) bool {
	s1 := normalizeLocation(a)
	s2 := normalizeLocation(b)
	if s1 == "" || s2 == "" {
		return false
	}
	if s1 == s2 {
		return true
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return true
	}

	words1 := longWords(s1)
	words2 := longWords(s2)
	if len(words1) == 0 || len(words2) == 0 {
		return false
	}
	for _, w1 := range words1 {
		matched := false
		for _, w2 := range words2 {
			if strings.Contains(w1, w2) || strings.Contains(w2, w1) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func longWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// locationAliases cross-matches region names with known sub-locations,
// e.g. a "hawaii" request matches a Honolulu property.
var locationAliases = []struct {
	key     string
	aliases []string
}{
	{"hawaii", []string{"honolulu", "maui", "wailea", "lahaina"}},
	{"maldives", []string{"malé", "male"}},
	{"new york", []string{"nyc", "manhattan", "times square"}},
	{"orlando", []string{"disney", "walt disney world"}},
	{"paris", []string{"france"}},
	{"tokyo", []string{"japan"}},
	{"dubai", []string{"uae", "united arab emirates"}},
}

// locationMatch scores how well the hotel's geography fits the
// requested location: 5 city, 4 country/containment/alias, 3 region,
// 0 no signal. Returns 0 when no location was requested.
func locationMatch(h domain.Hotel, intentLocation string) int {
	if strings.TrimSpace(intentLocation) == "" {
		return 0
	}

	if fuzzyMatch(intentLocation, h.City) {
		return 5
	}
	if fuzzyMatch(intentLocation, h.Country) {
		return 4
	}

	intentLoc := normalizeLocation(intentLocation)
	city := normalizeLocation(h.City)
	if city != "" && (strings.Contains(intentLoc, city) || strings.Contains(city, intentLoc)) {
		return 4
	}
	if h.Region != "" && fuzzyMatch(intentLocation, h.Region) {
		return 3
	}

	for _, entry := range locationAliases {
		if fuzzyMatch(intentLocation, entry.key) {
			for _, alias := range entry.aliases {
				if fuzzyMatch(h.City, alias) || fuzzyMatch(h.Country, alias) {
					return 4
				}
			}
		}
		for _, alias := range entry.aliases {
			if fuzzyMatch(intentLocation, alias) {
				if fuzzyMatch(h.City, entry.key) || fuzzyMatch(h.Country, entry.key) {
					return 4
				}
				break
			}
		}
	}
	return 0
}

/********** sub-scores **********/

func budgetScore(h domain.Hotel, budget *domain.BudgetBand) int {
	if budget == nil {
		return 0
	}
	band := domain.BudgetBands[*budget]
	price := h.BasePriceUSD
	if price >= band.Min && price <= band.Max {
		return 3 // within the band
	}
	distance := price - band.Typical
	if distance < 0 {
		distance = -distance
	}
	switch {
	case distance < 100:
		return 2
	case distance < 200:
		return 1
	}
	return -1
}

func experienceMatch(h domain.Hotel, mood domain.Mood) int {
	if h.HasExperience(domain.ExperienceTag(mood)) {
		return 3
	}
	// Fixed partial-compatibility pairs.
	if (mood == domain.MoodRomantic && h.HasExperience(domain.TagRelaxing)) ||
		(mood == domain.MoodAdventure && h.HasExperience(domain.TagMountain)) {
		return 2
	}
	return 0
}

func partySuitability(h domain.Hotel, party domain.Party) int {
	score := 0
	if party.Kids != nil && *party.Kids > 0 && h.Suitability.Family {
		score += 2
	}
	if party.Adults == 2 && party.Kids == nil && h.Suitability.Couples {
		score += 2
	}
	if party.Adults > 2 && h.Suitability.Groups {
		score += 2
	}
	return score
}

func hotelText(h domain.Hotel, withGeo bool) string {
	var b strings.Builder
	b.WriteString(strings.Join(h.Amenities, " "))
	for _, e := range h.Experiences {
		b.WriteString(" ")
		b.WriteString(string(e))
	}
	if withGeo {
		b.WriteString(" ")
		b.WriteString(h.City)
		b.WriteString(" ")
		b.WriteString(h.Country)
	}
	return strings.ToLower(b.String())
}

func nonNegotiablesMatch(h domain.Hotel, reqs []string) int {
	if len(reqs) == 0 {
		return 0
	}
	text := hotelText(h, false)
	score := 0
	for _, req := range reqs {
		if strings.Contains(text, strings.ToLower(req)) {
			score += 3
		}
	}
	return score
}

func interestsMatch(h domain.Hotel, interests []string) int {
	if len(interests) == 0 {
		return 0
	}
	text := hotelText(h, true)
	score := 0
	for _, interest := range interests {
		if strings.Contains(text, strings.ToLower(interest)) {
			score++
		}
	}
	return score
}

/********** scoring, filtering, brand selection **********/

// ScoreHotel computes the fitness score for one (hotel, intent) pair.
// Pure and deterministic; six independently-weighted sub-scores.
func ScoreHotel(h domain.Hotel, intent domain.Intent) int {
	score := 0

	// Location carries the highest weight; a named destination with no
	// geographic signal at all sinks the hotel below the filter gate.
	locScore := locationMatch(h, intent.Location)
	score += locScore
	if intent.HasLocation() && locScore == 0 {
		score -= 10
	}

	score += experienceMatch(h, intent.Mood)
	score += partySuitability(h, intent.Party)
	score += budgetScore(h, intent.Budget)
	score += nonNegotiablesMatch(h, intent.NonNegotiables)
	score += interestsMatch(h, intent.Interests)

	return score
}

// FilterRanked thresholds and sorts scored hotels. With a requested
// location only positive scores survive (the −10 penalty acts as a
// hard gate); without one, non-negative scores survive. Ties keep
// their relative order.
func FilterRanked(scored []domain.ScoredHotel, hasLocation bool) []domain.ScoredHotel {
	out := make([]domain.ScoredHotel, 0, len(scored))
	for _, sh := range scored {
		if hasLocation {
			if sh.Score > 0 {
				out = append(out, sh)
			}
		} else if sh.Score >= 0 {
			out = append(out, sh)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// SelectBestBrand sums each brand's top-3 scores and picks the
// strongest. Ties, and the absence of any marriott candidates, resolve
// to marriott by policy.
func SelectBestBrand(scored []domain.ScoredHotel) domain.Brand {
	byBrand := make(map[domain.Brand][]int)
	for _, sh := range scored {
		byBrand[sh.Hotel.Brand] = append(byBrand[sh.Hotel.Brand], sh.Score)
	}

	sums := make(map[domain.Brand]int, len(byBrand))
	for brand, scores := range byBrand {
		sort.Sort(sort.Reverse(sort.IntSlice(scores)))
		top := scores
		if len(top) > 3 {
			top = top[:3]
		}
		sum := 0
		for _, s := range top {
			sum += s
		}
		sums[brand] = sum
	}

	best := domain.BrandMarriott
	bestSum := sums[domain.BrandMarriott]
	for _, brand := range domain.Brands {
		if sums[brand] > bestSum {
			best = brand
			bestSum = sums[brand]
		}
	}
	return best
}

/********** highlights **********/

// Highlights picks up to three human-readable selling points in fixed
// priority order.
func Highlights(h domain.Hotel, intent domain.Intent) []string {
	var out []string

	if h.HasExperience(domain.ExperienceTag(intent.Mood)) {
		out = append(out, fmt.Sprintf("Perfect for %s experiences", intent.Mood))
	}
	if intent.Party.Kids != nil && *intent.Party.Kids > 0 && h.Suitability.Family {
		out = append(out, "Family-friendly")
	}
	if intent.Party.Adults == 2 && intent.Party.Kids == nil && h.Suitability.Couples {
		out = append(out, "Ideal for couples")
	}
	if h.HasExperience(domain.TagBeach) {
		out = append(out, "Beachfront location")
	}
	if h.HasExperience(domain.TagSpa) {
		out = append(out, "World-class spa")
	}
	if len(h.Amenities) > 0 {
		out = append(out, h.Amenities[0])
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
