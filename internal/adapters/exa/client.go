// internal/adapters/exa/client.go
package exa

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

// Client talks to the Exa content-search API (POST /search).
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrUnauthorized = errors.New("exa: unauthorized")
	ErrForbidden    = errors.New("exa: forbidden")
)

// wire shapes; unknown fields are dropped, missing fields decode to
// zero values so downstream code never sees untyped state.
type searchRequest struct {
	Query          string          `json:"query"`
	NumResults     int             `json:"numResults"`
	IncludeDomains []string        `json:"includeDomains,omitempty"`
	Contents       contentsRequest `json:"contents"`
	UseAutoprompt  bool            `json:"useAutoprompt"`
	Type           string          `json:"type"`
}

type contentsRequest struct {
	Text textRequest `json:"text"`
}

type textRequest struct {
	MaxCharacters int `json:"maxCharacters"`
}

type searchResponse struct {
	Results []struct {
		URL   string `json:"url"`
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"results"`
}

// Search runs one domain-restricted query and returns typed results.
// Results without a URL are dropped.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	body := searchRequest{
		Query:         q.Query,
		NumResults:    q.NumResults,
		Contents:      contentsRequest{Text: textRequest{MaxCharacters: q.MaxTextChars}},
		UseAutoprompt: false,
		Type:          "keyword", // non-creative retrieval
	}
	if q.IncludeDomain != "" {
		body.IncludeDomains = []string{q.IncludeDomain}
	}

	var resp searchResponse
	start := time.Now()
	err := c.post(ctx, c.base+"/search", body, &resp)
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("exa", "search", status, time.Since(start))
	if err != nil {
		return nil, err
	}

	out := make([]domain.SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.URL == "" {
			continue
		}
		out = append(out, domain.SearchResult{URL: r.URL, Title: r.Title, Text: r.Text})
	}
	return out, nil
}

// post performs a POST with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx, honoring
// Retry-After when provided.
func (c *Client) post(ctx context.Context, url string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("X-Api-Key", c.key)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "trip-planner/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			// read a small error body for diagnostics
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0                  // 0..1
	j := time.Duration(0.5 * f * float64(base)) // up to +50%
	return base + j
}
