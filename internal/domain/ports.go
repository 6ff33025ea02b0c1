package domain

import (
	"context"
	"errors"
	"time"
)

// SearchQuery is one request against the content-search provider.
type SearchQuery struct {
	Query         string
	IncludeDomain string // restrict results to this web domain
	NumResults    int
	MaxTextChars  int // cap on extracted text per result
}

// SearchResult is a single provider hit, already parsed into a typed
// record. Missing fields come back as empty strings, never as
// untyped maps.
type SearchResult struct {
	URL   string
	Title string
	Text  string
}

// SearchProvider is the external content-search service.
type SearchProvider interface {
	Search(ctx context.Context, q SearchQuery) ([]SearchResult, error)
}

// IntentModel is the structured-generation service behind the primary
// extraction path. It returns the raw JSON document produced by the
// model; parsing and validation happen in the app layer.
type IntentModel interface {
	ExtractIntent(ctx context.Context, prompt string) ([]byte, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// The only two domain failures PlanTrip may surface. Everything else
// is recovered locally (extraction falls back, dead sources contribute
// nothing) or propagates as a generic internal error.
var (
	ErrNoCandidates      = errors.New("no hotels matched the request")
	ErrNoBrandCandidates = errors.New("no hotels for the selected brand")
)
