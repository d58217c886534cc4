package zohoclient

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	a := url.Values{}
	a.Set("to_date", "2026-01-31")
	a.Set("from_date", "2026-01-01")

	b := url.Values{}
	b.Set("from_date", "2026-01-01")
	b.Set("to_date", "2026-01-31")

	assert.Equal(t, CacheKey("reports/profitandloss", a), CacheKey("reports/profitandloss", b))
	assert.Equal(t, "reports/profitandloss?from_date=2026-01-01&to_date=2026-01-31", CacheKey("reports/profitandloss", a))
	assert.Equal(t, "bankaccounts", CacheKey("bankaccounts", nil))
}

func TestResponseCache(t *testing.T) {
	clock := newFakeClock()

	tests := []struct {
		name     string
		ttl      time.Duration
		advance  time.Duration
		expected bool
	}{
		{name: "Dentro da validade", ttl: time.Hour, advance: 59 * time.Minute, expected: true},
		{name: "Expira exatamente no TTL", ttl: time.Hour, advance: time.Hour, expected: false},
		{name: "TTL zero desativa o cache", ttl: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewResponseCache(tt.ttl, clock.Now)
			cache.Set("k", []byte(`{}`))
			clock.Advance(tt.advance)

			payload, ok := cache.Get("k")

			assert.Equal(t, tt.expected, ok)
			if tt.expected {
				assert.Equal(t, []byte(`{}`), payload)
			}
		})
	}
}

func TestResponseCache_ExpiredEntryIsDropped(t *testing.T) {
	clock := newFakeClock()
	cache := NewResponseCache(time.Minute, clock.Now)

	cache.Set("k", []byte(`{}`))
	clock.Advance(2 * time.Minute)

	_, ok := cache.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}
