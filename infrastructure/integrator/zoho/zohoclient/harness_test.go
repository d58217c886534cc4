package zohoclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// harness sobe um servidor único para o endpoint de token e para a API.
type harness struct {
	server     *httptest.Server
	clock      *fakeClock
	cfg        *config.Config
	session    *Session
	dispatcher *Dispatcher
	client     Client

	apiCalls   atomic.Int32
	tokenCalls atomic.Int32

	mu         sync.Mutex
	sleeps     []time.Duration
	dispatched []time.Time
	lastQuery  []string
}

func testConfig(serverURL string) *config.Config {
	return &config.Config{
		Zoho: config.Zoho{
			ClientID:           "client",
			ClientSecret:       "secret",
			RefreshToken:       "refresh",
			OrganizationID:     "org-1",
			AccountsURL:        serverURL,
			APIURL:             serverURL + "/api/v3",
			TokenRefreshSkew:   5 * time.Minute,
			Timeout:            5 * time.Second,
			DefaultTokenExpiry: time.Hour,
		},
		Dispatcher: config.Dispatcher{
			Spacing:        2 * time.Second,
			CacheTTL:       time.Hour,
			RetryAttempts:  3,
			RetryBaseDelay: 100 * time.Millisecond,
			PageSize:       2,
			MaxPages:       5,
		},
	}
}

func newHarness(t *testing.T, api http.HandlerFunc, token http.HandlerFunc, mutate func(*config.Config)) *harness {
	t.Helper()

	h := &harness{clock: newFakeClock()}

	if token == nil {
		token = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"Bearer"}`))
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		h.tokenCalls.Add(1)
		token(w, r)
	})
	mux.HandleFunc("/api/v3/", func(w http.ResponseWriter, r *http.Request) {
		h.apiCalls.Add(1)
		h.mu.Lock()
		h.lastQuery = append(h.lastQuery, r.URL.RawQuery)
		h.mu.Unlock()
		api(w, r)
	})

	h.server = httptest.NewServer(mux)
	t.Cleanup(h.server.Close)

	h.cfg = testConfig(h.server.URL)
	if mutate != nil {
		mutate(h.cfg)
	}

	h.session = NewSession(h.cfg, WithHTTPClient(h.server.Client()), WithClock(h.clock.Now))
	h.dispatcher = NewDispatcher(h.cfg, h.session,
		WithAPIHTTPClient(h.server.Client()),
		WithSleeper(func(_ context.Context, d time.Duration) error {
			if d > 0 {
				h.mu.Lock()
				h.sleeps = append(h.sleeps, d)
				h.mu.Unlock()
				h.clock.Advance(d)
			}
			return nil
		}),
		WithDispatchHook(func(_ Request, at time.Time) {
			h.mu.Lock()
			h.dispatched = append(h.dispatched, at)
			h.mu.Unlock()
		}),
	)
	h.client = NewClient(h.cfg, h.session, h.dispatcher)

	return h
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// sequence responde em ordem; a última resposta se repete.
func sequence(handlers ...http.HandlerFunc) http.HandlerFunc {
	var calls atomic.Int32
	return func(w http.ResponseWriter, r *http.Request) {
		i := int(calls.Add(1)) - 1
		if i >= len(handlers) {
			i = len(handlers) - 1
		}
		handlers[i](w, r)
	}
}

func (h *harness) sleepsCopy() []time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]time.Duration(nil), h.sleeps...)
}

func (h *harness) dispatchedCopy() []time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]time.Time(nil), h.dispatched...)
}

func (h *harness) queryContains(i int, fragment string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return i < len(h.lastQuery) && strings.Contains(h.lastQuery[i], fragment)
}
