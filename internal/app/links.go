package app

import (
	"fmt"
	"net/url"

	"trip_planner/internal/domain"
)

const utmParams = "utm_source=trip-planner&utm_medium=web"

// BrandDeepLink builds a brand search deep link for hotels whose
// source page URL is unknown. Pure templating, no ranking semantics.
func BrandDeepLink(h domain.Hotel) string {
	city := url.QueryEscape(h.City)
	switch h.Brand {
	case domain.BrandMarriott:
		return fmt.Sprintf("https://www.marriott.com/search/default.mi?destination=%s&%s", city, utmParams)
	case domain.BrandHilton:
		return fmt.Sprintf("https://www.hilton.com/en/locations/?search=%s&%s", city, utmParams)
	case domain.BrandHyatt:
		return fmt.Sprintf("https://www.hyatt.com/en-US/hotelsearch?location=%s&%s", city, utmParams)
	}
	return fmt.Sprintf("https://www.google.com/search?q=%s+hotels", city)
}
