package domain

// Ancillary is a paid add-on drawn verbatim from the static catalog.
type Ancillary struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceHint   string `json:"priceHint,omitempty"`
}

// PlanHotel is one recommended property inside a plan.
type PlanHotel struct {
	Hotel       Hotel       `json:"hotel"`
	Score       int         `json:"score"`
	Highlights  []string    `json:"highlights"`
	Ancillaries []Ancillary `json:"ancillaries"`
	BookURL     string      `json:"bookUrl"`
}

// PlanOption is the terminal artifact returned to the caller:
// a single winning brand with its top properties.
type PlanOption struct {
	Brand     Brand       `json:"brand"`
	Rationale string      `json:"rationale"`
	Hotels    []PlanHotel `json:"hotels"`
}
