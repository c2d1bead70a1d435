// Package mcstatus looks up the game server's live status from an external
// status API. Lookups are best-effort: any failure is reported as an offline
// summary rather than an error, so the status panel never breaks the page.
package mcstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Summary is the rendered view of a status lookup.
type Summary struct {
	Online        bool
	PlayersOnline int
	PlayersMax    int
	Version       string
	MOTD          []string
	CheckedAt     time.Time
}

// Client queries a mcsrvstat-compatible API. When baseURL is empty, the
// client exclusively serves the offline fallback.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a status client with the provided API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

var (
	cacheMu      sync.RWMutex
	summaryCache = map[string]cacheEntry{}
	cacheTTL     = 45 * time.Second
)

type cacheEntry struct {
	summary Summary
	expires time.Time
}

// SetCacheTTL configures the cache duration (primarily for tests).
func SetCacheTTL(d time.Duration) {
	if d <= 0 {
		d = time.Second
	}
	cacheMu.Lock()
	cacheTTL = d
	summaryCache = map[string]cacheEntry{}
	cacheMu.Unlock()
}

// FetchSummary returns the status of the server at addr, preferring a cached
// value. A failed or malformed remote response yields the offline summary;
// callers never see an error.
func (c *Client) FetchSummary(ctx context.Context, addr string) Summary {
	addr = strings.TrimSpace(addr)
	if s, ok := cached(addr); ok {
		return s
	}

	summary, ok := Summary{}, false
	if c != nil && c.baseURL != "" && addr != "" {
		summary, ok = c.fetchRemote(ctx, addr)
	}
	if !ok {
		summary = offlineSummary()
	}
	store(addr, summary)
	return summary
}

func (c *Client) fetchRemote(ctx context.Context, addr string) (Summary, bool) {
	endpoint := fmt.Sprintf("%s/2/%s", c.baseURL, addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, false
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Summary{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return Summary{}, false
	}

	var payload remoteStatus
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Summary{}, false
	}
	return mapRemote(payload), true
}

type remoteStatus struct {
	Online  bool `json:"online"`
	Players struct {
		Online int `json:"online"`
		Max    int `json:"max"`
	} `json:"players"`
	Version string `json:"version"`
	MOTD    struct {
		Clean []string `json:"clean"`
	} `json:"motd"`
}

func mapRemote(raw remoteStatus) Summary {
	s := Summary{
		Online:        raw.Online,
		PlayersOnline: raw.Players.Online,
		PlayersMax:    raw.Players.Max,
		Version:       strings.TrimSpace(raw.Version),
		CheckedAt:     time.Now(),
	}
	if s.Version == "" {
		s.Version = "Unknown"
	}
	for _, line := range raw.MOTD.Clean {
		if line = strings.TrimSpace(line); line != "" {
			s.MOTD = append(s.MOTD, line)
		}
	}
	return s
}

func offlineSummary() Summary {
	return Summary{
		Online:    false,
		Version:   "Unknown",
		MOTD:      []string{"Unable to reach server API."},
		CheckedAt: time.Now(),
	}
}

func cached(addr string) (Summary, bool) {
	cacheMu.RLock()
	entry, ok := summaryCache[addr]
	cacheMu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Summary{}, false
	}
	return entry.summary, true
}

func store(addr string, s Summary) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	summaryCache[addr] = cacheEntry{summary: s, expires: time.Now().Add(cacheTTL)}
}
