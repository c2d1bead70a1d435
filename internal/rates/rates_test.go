package rates

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertEGPToSAR(t *testing.T) {
	cases := []struct {
		egp  int64
		rate float64
		want float64
	}{
		{135, 13.5, 10.0},
		{135, 13.7, 9.9}, // 9.854 rounds down to 9.9 at the tenths digit
		{0, 13.5, 0},
		{100, 13.5, 7.4}, // 7.407
		{1500, 13.5, 111.1},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d@%.2f", tc.egp, tc.rate), func(t *testing.T) {
			assert.InDelta(t, tc.want, ConvertEGPToSAR(tc.egp, tc.rate), 1e-9)
		})
	}
}

func TestConvertGuardsBadRate(t *testing.T) {
	assert.InDelta(t, 10.0, ConvertEGPToSAR(135, 0), 1e-9)
	assert.InDelta(t, 10.0, ConvertEGPToSAR(135, -1), 1e-9)
}

func TestFetchLive(t *testing.T) {
	SetCacheTTL(time.Millisecond)
	time.Sleep(2 * time.Millisecond)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/SAR", r.URL.Path)
		fmt.Fprint(w, `{"result":"success","rates":{"EGP":13.72,"USD":0.27}}`)
	}))
	defer srv.Close()

	q := NewClient(srv.URL).Fetch(context.Background())
	assert.True(t, q.Live)
	assert.InDelta(t, 13.72, q.Rate, 1e-9)
}

func TestFetchFallsBack(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"rates": "nope"`)
		},
		"missing EGP": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"rates":{"USD":0.27}}`)
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			SetCacheTTL(time.Millisecond)
			time.Sleep(2 * time.Millisecond)
			srv := httptest.NewServer(h)
			defer srv.Close()
			q := NewClient(srv.URL).Fetch(context.Background())
			assert.False(t, q.Live)
			assert.InDelta(t, FallbackRate, q.Rate, 1e-9)
		})
	}
}

func TestFetchUnconfigured(t *testing.T) {
	SetCacheTTL(time.Millisecond)
	time.Sleep(2 * time.Millisecond)
	q := NewClient("").Fetch(context.Background())
	assert.False(t, q.Live)
	assert.InDelta(t, FallbackRate, q.Rate, 1e-9)
}

func TestFetchUsesCache(t *testing.T) {
	SetCacheTTL(time.Hour)
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"rates":{"EGP":14.0}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	first := c.Fetch(context.Background())
	second := c.Fetch(context.Background())
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	SetCacheTTL(time.Millisecond)
}
