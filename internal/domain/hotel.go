package domain

// Brand is one of the supported hotel chains. The set is closed;
// adding a brand means adding a search source for it.
type Brand string

const (
	BrandMarriott Brand = "marriott"
	BrandHilton   Brand = "hilton"
	BrandHyatt    Brand = "hyatt"
)

// Brands lists the chains in a fixed order. Brand selection iterates
// this slice, so ties resolve deterministically.
var Brands = []Brand{BrandMarriott, BrandHilton, BrandHyatt}

// ExperienceTag is a property attribute inferred from source text.
type ExperienceTag string

const (
	TagAdventure ExperienceTag = "adventure"
	TagRelaxing  ExperienceTag = "relaxing"
	TagRomantic  ExperienceTag = "romantic"
	TagFamily    ExperienceTag = "family"
	TagNightlife ExperienceTag = "nightlife"
	TagCulture   ExperienceTag = "culture"
	TagBeach     ExperienceTag = "beach"
	TagMountain  ExperienceTag = "mountain"
	TagSpa       ExperienceTag = "spa"
	TagWaterpark ExperienceTag = "waterpark"
	TagGolf      ExperienceTag = "golf"
)

type Suitability struct {
	Family  bool `json:"family"`
	Couples bool `json:"couples"`
	Groups  bool `json:"groups"`
}

// Hotel is a normalized candidate property. It lives for one request;
// BasePriceUSD is the only field rewritten after creation (forced to
// the budget band's typical rate when the caller declared a band).
type Hotel struct {
	ID           string          `json:"id"`
	Brand        Brand           `json:"brand"`
	Name         string          `json:"name"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Region       string          `json:"region,omitempty"`
	BasePriceUSD int             `json:"basePriceUsd"`
	Suitability  Suitability     `json:"suitability"`
	Experiences  []ExperienceTag `json:"experiences"`
	Amenities    []string        `json:"amenities"`
	HeroImage    string          `json:"heroImage"`
	BookURL      string          `json:"bookUrl,omitempty"`
}

// HasExperience reports whether t is among the hotel's inferred tags.
func (h Hotel) HasExperience(t ExperienceTag) bool {
	for _, e := range h.Experiences {
		if e == t {
			return true
		}
	}
	return false
}

// ScoredHotel pairs a candidate with its fitness score.
type ScoredHotel struct {
	Hotel Hotel
	Score int
}
