// Package rates provides a best-effort SAR→EGP exchange rate lookup used to
// display the transfer amount for STC Pay orders. The rate is cosmetic
// precision only: a failed lookup silently falls back to an approximate
// constant and never blocks checkout.
package rates

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"
)

// FallbackRate approximates the NBE SAR→EGP rate and is used whenever the
// live lookup fails.
const FallbackRate = 13.5

// Quote is the outcome of a rate lookup. Live distinguishes a fetched rate
// from the fallback constant so consumers can never observe a partial state.
type Quote struct {
	Rate float64
	Live bool
}

// Fallback returns the constant-rate quote.
func Fallback() Quote { return Quote{Rate: FallbackRate} }

// Client fetches the SAR base table from an external rate API. When baseURL
// is empty, the client exclusively serves the fallback quote.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a rate client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

var (
	cacheMu    sync.RWMutex
	cachedQ    Quote
	cacheUntil time.Time
	cacheTTL   = 5 * time.Minute
)

// SetCacheTTL configures the quote cache duration (primarily for tests).
func SetCacheTTL(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	cacheMu.Lock()
	cacheTTL = d
	cacheUntil = time.Time{}
	cacheMu.Unlock()
}

// Fetch returns the current SAR→EGP quote. A single remote attempt is made
// per cache window; any failure (transport, status, malformed body, missing
// EGP entry) yields the fallback quote. Fetch never returns an error.
func (c *Client) Fetch(ctx context.Context) Quote {
	cacheMu.RLock()
	if time.Now().Before(cacheUntil) {
		q := cachedQ
		cacheMu.RUnlock()
		return q
	}
	cacheMu.RUnlock()

	q := Fallback()
	if c != nil && c.baseURL != "" {
		if live, ok := c.fetchRemote(ctx); ok {
			q = live
		}
	}

	cacheMu.Lock()
	cachedQ = q
	cacheUntil = time.Now().Add(cacheTTL)
	cacheMu.Unlock()
	return q
}

func (c *Client) fetchRemote(ctx context.Context) (Quote, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v6/latest/SAR", nil)
	if err != nil {
		return Quote{}, false
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Quote{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return Quote{}, false
	}
	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Quote{}, false
	}
	rate, ok := payload.Rates["EGP"]
	if !ok || rate <= 0 {
		return Quote{}, false
	}
	return Quote{Rate: rate, Live: true}, true
}

// ConvertEGPToSAR converts an EGP amount at the given rate, rounded half-up
// at the tenths digit (135 @ 13.5 → 10.0; 135 @ 13.7 → 9.9).
func ConvertEGPToSAR(egp int64, rate float64) float64 {
	if rate <= 0 {
		rate = FallbackRate
	}
	sar := float64(egp) / rate
	return math.Floor(sar*10+0.5) / 10
}
