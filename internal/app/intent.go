package app

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/domain"
)

// IntentService turns a raw prompt into a structured Intent. The
// primary path asks the structured-generation model; any failure there
// (provider error, malformed JSON) falls through to the rule-based
// fallback, so Extract never fails.
type IntentService struct {
	model domain.IntentModel // nil means fallback-only
}

func NewIntentService(m domain.IntentModel) *IntentService {
	return &IntentService{model: m}
}

func (s *IntentService) Extract(ctx context.Context, prompt string) domain.Intent {
	if s.model != nil {
		doc, err := s.model.ExtractIntent(ctx, prompt)
		if err == nil {
			in, perr := parseIntentDoc(prompt, doc)
			if perr == nil {
				return in
			}
			err = perr
		}
		log.Warn().Err(err).Msg("model extraction failed; using rule-based fallback")
	}
	return FallbackExtract(prompt)
}

// intentDoc is the wire shape the model is asked to produce. Missing
// fields decode to zero values and are defaulted below.
type intentDoc struct {
	Mood     string `json:"mood"`
	Location string `json:"location"`
	Party    struct {
		Adults int  `json:"adults"`
		Kids   *int `json:"kids"`
	} `json:"party"`
	Dates          *domain.DateRange `json:"dates"`
	Budget         string            `json:"budget"`
	NonNegotiables []string          `json:"nonNegotiables"`
	Interests      []string          `json:"interests"`
}

func parseIntentDoc(prompt string, doc []byte) (domain.Intent, error) {
	var d intentDoc
	if err := json.Unmarshal(doc, &d); err != nil {
		return domain.Intent{}, fmt.Errorf("decode intent document: %w", err)
	}

	adults := d.Party.Adults
	if adults < 1 {
		adults = 2
	}
	// Zero kids is the same party as no kids mentioned; the couples
	// rules downstream key off a nil pointer.
	kids := d.Party.Kids
	if kids != nil && *kids <= 0 {
		kids = nil
	}
	budget := domain.ParseBudget(d.Budget)

	in := domain.Intent{
		Raw:            prompt,
		Mood:           domain.ParseMood(d.Mood),
		Location:       strings.TrimSpace(d.Location),
		Party:          domain.Party{Adults: adults, Kids: kids},
		Dates:          d.Dates,
		Budget:         &budget,
		NonNegotiables: d.NonNegotiables,
		Interests:      d.Interests,
	}
	if in.NonNegotiables == nil {
		in.NonNegotiables = []string{}
	}
	if in.Interests == nil {
		in.Interests = []string{}
	}
	return in, nil
}

/********** deterministic fallback **********/

// moodRules is checked in order; the first keyword hit wins.
var moodRules = []struct {
	keywords []string
	mood     domain.Mood
}{
	{[]string{"adventure", "adventurous"}, domain.MoodAdventure},
	{[]string{"romantic", "partner", "couple"}, domain.MoodRomantic},
	{[]string{"family", "kids", "children"}, domain.MoodFamily},
	{[]string{"nightlife", "party"}, domain.MoodNightlife},
	{[]string{"culture", "museum", "historic"}, domain.MoodCulture},
	{[]string{"beach", "ocean", "coast"}, domain.MoodBeach},
	{[]string{"mountain", "ski", "hiking"}, domain.MoodMountain},
}

var (
	adultsRe = regexp.MustCompile(`(\d+)\s*(?:adults?|people|travelers?)`)
	kidsRe   = regexp.MustCompile(`(\d+)\s*(?:kids?|children|child)`)

	// Checked in order; the last match of the first pattern that
	// matches at all wins. All three are capitalization-sensitive.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:in|to|at|near|for)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:vacation|trip|getaway|holiday)`),
		regexp.MustCompile(`(?:going|traveling|visiting)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	}

	// Common destinations scanned case-insensitively when no phrase
	// pattern matched; original casing is recovered from the prompt.
	gazetteer = []string{
		"maldives", "paris", "rome", "tokyo", "dubai", "new york", "orlando",
		"hawaii", "maui", "cancun", "london", "barcelona", "bali", "santorini",
		"denver", "aspen", "sedona", "whistler", "istanbul", "vienna", "kyoto",
	}
)

// FallbackExtract is the deterministic, rule-based extractor. It is a
// pure function of the prompt and needs no external calls.
func FallbackExtract(prompt string) domain.Intent {
	lower := strings.ToLower(prompt)

	mood := domain.MoodRelaxing
	for _, rule := range moodRules {
		if containsAny(lower, rule.keywords) {
			mood = rule.mood
			break
		}
	}

	adults := 2
	if m := adultsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			adults = n
		}
	}
	var kids *int
	if m := kidsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			kids = &n
		}
	}

	location := extractLocation(prompt, lower)

	budget := domain.BudgetMid
	switch {
	case containsAny(lower, []string{"budget", "cheap", "affordable"}):
		budget = domain.BudgetValue
	case containsAny(lower, []string{"luxury", "premium", "high-end"}):
		budget = domain.BudgetLuxury
	case strings.Contains(lower, "premium"):
		budget = domain.BudgetPremium
	}

	nonNegotiables := []string{}
	if strings.Contains(lower, "waterpark") {
		nonNegotiables = append(nonNegotiables, "waterpark")
	}
	if strings.Contains(lower, "spa") {
		nonNegotiables = append(nonNegotiables, "spa")
	}
	if strings.Contains(lower, "beachfront") || strings.Contains(lower, "beach front") {
		nonNegotiables = append(nonNegotiables, "beachfront")
	}

	return domain.Intent{
		Raw:            prompt,
		Mood:           mood,
		Location:       location,
		Party:          domain.Party{Adults: adults, Kids: kids},
		Budget:         &budget,
		NonNegotiables: nonNegotiables,
		Interests:      []string{},
	}
}

func extractLocation(prompt, lower string) string {
	for _, re := range locationPatterns {
		matches := re.FindAllStringSubmatch(prompt, -1)
		if len(matches) > 0 {
			// The last match is usually the most specific.
			return strings.TrimSpace(matches[len(matches)-1][1])
		}
	}
	for _, loc := range gazetteer {
		if idx := strings.Index(lower, loc); idx >= 0 {
			// Recover the original casing from the prompt.
			return prompt[idx : idx+len(loc)]
		}
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
