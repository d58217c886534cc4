package zohoclient

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
)

// Session é o contexto explícito de uma integração: token, cache de respostas e
// limitador de chamadas. Uma instância por processo, criada com NewSession e
// encerrada com Close.
type Session struct {
	Tokens  *TokenManager
	Cache   *ResponseCache
	Limiter *rate.Limiter
	now     func() time.Time
}

type SessionOption func(*sessionOptions)

type sessionOptions struct {
	httpClient *http.Client
	now        func() time.Time
}

// WithHTTPClient troca o cliente usado na troca de tokens.
func WithHTTPClient(c *http.Client) SessionOption {
	return func(o *sessionOptions) { o.httpClient = c }
}

// WithClock injeta o relógio usado por token, cache e limitador.
func WithClock(now func() time.Time) SessionOption {
	return func(o *sessionOptions) { o.now = now }
}

func NewSession(cfg *config.Config, opts ...SessionOption) *Session {
	o := &sessionOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	return &Session{
		Tokens:  NewTokenManager(cfg.Zoho, o.httpClient, o.now),
		Cache:   NewResponseCache(cfg.Dispatcher.CacheTTL, o.now),
		Limiter: newLimiter(cfg.Dispatcher.Spacing),
		now:     o.now,
	}
}

// newLimiter permite uma chamada a cada spacing, sem rajadas.
func newLimiter(spacing time.Duration) *rate.Limiter {
	if spacing <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(spacing), 1)
}

// Close descarta token e respostas em cache.
func (s *Session) Close() {
	s.Tokens.Invalidate()
	s.Cache.Clear()
}
