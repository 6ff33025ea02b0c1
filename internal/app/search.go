package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

// brandDomains restricts each sub-search to the brand's own site.
var brandDomains = map[domain.Brand]string{
	domain.BrandMarriott: "marriott.com",
	domain.BrandHilton:   "hilton.com",
	domain.BrandHyatt:    "hyatt.com",
}

// SourceAggregator fans one search per brand out against the
// content-search provider. Each sub-search races its own deadline;
// a timed-out or failed source contributes an empty result set,
// never an aggregate failure.
type SourceAggregator struct {
	provider      domain.SearchProvider
	cache         domain.Cache // optional
	cacheTTL      time.Duration
	sourceTimeout time.Duration
	limit         int
}

func NewSourceAggregator(p domain.SearchProvider, c domain.Cache, cacheTTL, sourceTimeout time.Duration, limit int) *SourceAggregator {
	if sourceTimeout <= 0 {
		sourceTimeout = 4 * time.Second
	}
	if limit <= 0 {
		limit = 8
	}
	return &SourceAggregator{provider: p, cache: c, cacheTTL: cacheTTL, sourceTimeout: sourceTimeout, limit: limit}
}

// Search returns the union of whatever brand sub-searches completed
// within their deadlines. The result order does not depend on which
// source finished first; downstream ordering is by score only.
func (a *SourceAggregator) Search(ctx context.Context, location string) []domain.Hotel {
	perBrand := make([][]domain.Hotel, len(domain.Brands))

	var g errgroup.Group
	for i, b := range domain.Brands {
		i, b := i, b
		g.Go(func() error {
			bctx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
			defer cancel()

			hotels, err := a.searchBrand(bctx, b, location)
			if err != nil {
				outcome := "error"
				if errors.Is(err, context.DeadlineExceeded) {
					outcome = "timeout"
				}
				observability.ObserveSource(string(b), outcome)
				log.Warn().Str("brand", string(b)).Err(err).Msg("brand search failed; contributing no results")
				return nil
			}
			if len(hotels) == 0 {
				observability.ObserveSource(string(b), "empty")
			} else {
				observability.ObserveSource(string(b), "ok")
			}
			// Each goroutine writes only its own slot, so the join
			// needs no locking and late results cannot merge in.
			perBrand[i] = hotels
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.Hotel
	for _, hs := range perBrand {
		out = append(out, hs...)
	}
	return out
}

func (a *SourceAggregator) searchBrand(ctx context.Context, brand domain.Brand, location string) ([]domain.Hotel, error) {
	key := fmt.Sprintf("search:%s:%s", brand, strings.ToLower(strings.TrimSpace(location)))
	if a.cache != nil {
		var cached []domain.Hotel
		if ok, _ := a.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	query := fmt.Sprintf("%s hotel:", brand)
	if strings.TrimSpace(location) != "" {
		query = fmt.Sprintf("%s hotel in %s:", brand, strings.TrimSpace(location))
	}

	results, err := a.provider.Search(ctx, domain.SearchQuery{
		Query:         query,
		IncludeDomain: brandDomains[brand],
		NumResults:    a.limit,
		MaxTextChars:  2400,
	})
	if err != nil {
		return nil, err
	}

	hotels := make([]domain.Hotel, 0, len(results))
	for _, r := range results {
		if !isPropertyURL(r.URL, brand) {
			continue
		}
		hotels = append(hotels, toHotel(r, brand, location))
	}

	if a.cache != nil {
		_ = a.cache.Set(ctx, key, hotels, a.cacheTTL)
	}
	return hotels, nil
}

/********** per-result acceptance **********/

var (
	marriottPropertyRe = regexp.MustCompile(`/hotels/`)
	marriottListingRe  = regexp.MustCompile(`/(search|default\.mi)`)
	hiltonPropertyRe   = regexp.MustCompile(`/en/hotels/`)
	hyattPropertyRe    = regexp.MustCompile(`/en-US/hotel/`)
)

// isPropertyURL distinguishes an individual property page from a
// search or listing page, per brand.
func isPropertyURL(raw string, brand domain.Brand) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	p := u.Path
	switch brand {
	case domain.BrandMarriott:
		return marriottPropertyRe.MatchString(p) && !marriottListingRe.MatchString(p)
	case domain.BrandHilton:
		return hiltonPropertyRe.MatchString(p)
	case domain.BrandHyatt:
		return hyattPropertyRe.MatchString(p)
	}
	return false
}

/********** normalization **********/

var brandSuffixRe = regexp.MustCompile(`(?i)\s*-\s*(hilton|hyatt|marriott).*`)

var slugReplacer = strings.NewReplacer("-", " ", "_", " ")

func toHotel(r domain.SearchResult, brand domain.Brand, location string) domain.Hotel {
	name := strings.TrimSpace(brandSuffixRe.ReplaceAllString(r.Title, ""))
	if name == "" {
		name = nameFromURL(r.URL)
	}

	tags := inferTags(r.Text)
	return domain.Hotel{
		ID:           fmt.Sprintf("%s:%s", brand, r.URL),
		Brand:        brand,
		Name:         name,
		City:         location, // the queried location, not re-derived from text
		Country:      "",
		BasePriceUSD: 250, // provisional; overwritten when a budget band is known
		Suitability:  inferSuitability(r.Text),
		Experiences:  tags,
		Amenities:    []string{},
		HeroImage:    heroFor(tags),
		BookURL:      r.URL,
	}
}

func nameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "Unknown"
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segs[len(segs)-1]
	if last == "" {
		return "Unknown"
	}
	return slugReplacer.Replace(last)
}

// tagRules is checked in order; every matching category is added.
var tagRules = []struct {
	re  *regexp.Regexp
	tag domain.ExperienceTag
}{
	{regexp.MustCompile(`(?i)beach|ocean|coast|seaside|waterfront`), domain.TagBeach},
	{regexp.MustCompile(`(?i)spa|massage|wellness|relaxation`), domain.TagSpa},
	{regexp.MustCompile(`(?i)mountain|ski|hiking|alpine`), domain.TagMountain},
	{regexp.MustCompile(`(?i)family|kids|children|playground`), domain.TagFamily},
	{regexp.MustCompile(`(?i)nightlife|bar|club|entertainment`), domain.TagNightlife},
	{regexp.MustCompile(`(?i)museum|culture|historic|art|gallery`), domain.TagCulture},
	{regexp.MustCompile(`(?i)romantic|couples|honeymoon|intimate`), domain.TagRomantic},
	{regexp.MustCompile(`(?i)adventure|outdoor|sports|activities`), domain.TagAdventure},
	{regexp.MustCompile(`(?i)waterpark|water park|slides`), domain.TagWaterpark},
	{regexp.MustCompile(`(?i)golf|course|fairway`), domain.TagGolf},
}

func inferTags(text string) []domain.ExperienceTag {
	var tags []domain.ExperienceTag
	for _, rule := range tagRules {
		if rule.re.MatchString(text) {
			tags = append(tags, rule.tag)
		}
	}
	// Experiences is never empty: default to relaxing.
	if len(tags) == 0 {
		tags = append(tags, domain.TagRelaxing)
	}
	return tags
}

var (
	familyRe  = regexp.MustCompile(`(?i)family|kids|children|playground|family-friendly`)
	couplesRe = regexp.MustCompile(`(?i)couples?|romantic|honeymoon|intimate`)
	groupsRe  = regexp.MustCompile(`(?i)group|conference|meeting|business|event`)
)

func inferSuitability(text string) domain.Suitability {
	return domain.Suitability{
		Family:  familyRe.MatchString(text),
		Couples: couplesRe.MatchString(text),
		Groups:  groupsRe.MatchString(text),
	}
}

// Curated Unsplash images keyed by experience tag, in priority order.
const (
	heroBeach    = "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800"
	heroMountain = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"
	heroSpa      = "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800"
	heroCulture  = "https://images.unsplash.com/photo-1529260830199-42c24126f198?w=800"
	heroRomantic = "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800"
	heroDefault  = "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"
)

func heroFor(tags []domain.ExperienceTag) string {
	has := func(t domain.ExperienceTag) bool {
		for _, tag := range tags {
			if tag == t {
				return true
			}
		}
		return false
	}
	switch {
	case has(domain.TagBeach):
		return heroBeach
	case has(domain.TagMountain):
		return heroMountain
	case has(domain.TagSpa), has(domain.TagRelaxing):
		return heroSpa
	case has(domain.TagCulture):
		return heroCulture
	case has(domain.TagRomantic):
		return heroRomantic
	}
	return heroDefault
}
