package zohoclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
)

const tokenPath = "/oauth/v2/token"

// TokenManager troca o refresh token por tokens de acesso e os mantém em cache.
// A renovação é preguiçosa: acontece na primeira chamada após o vencimento.
type TokenManager struct {
	cfg        config.Zoho
	oauth      *oauth2.Config
	httpClient *http.Client
	now        func() time.Time

	mu           sync.Mutex
	token        *AccessToken
	refreshToken string
}

func NewTokenManager(cfg config.Zoho, httpClient *http.Client, now func() time.Time) *TokenManager {
	if now == nil {
		now = time.Now
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &TokenManager{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  strings.TrimRight(cfg.AccountsURL, "/") + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient:   httpClient,
		now:          now,
		refreshToken: cfg.RefreshToken,
	}
}

// GetToken devolve o token em cache enquanto válido; caso contrário renova.
func (tm *TokenManager) GetToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token.ValidAt(tm.now()) {
		return tm.token.Value, nil
	}

	return tm.refresh(ctx)
}

// Invalidate descarta o token atual, forçando renovação na próxima chamada.
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.token = nil
}

func (tm *TokenManager) refresh(ctx context.Context) (string, error) {
	if tm.refreshToken == "" {
		return "", zohodomain.NewAuthError(zohodomain.ErrMissingTokenField, "refresh token não configurado")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, tm.httpClient)
	source := tm.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: tm.refreshToken})

	issuedAt := tm.now()
	tok, err := source.Token()
	if err != nil {
		logrus.WithError(err).Error("zoho: failed to refresh access token")
		return "", zohodomain.NewAuthError(zohodomain.ErrTokenRefresh, err.Error())
	}

	if tok.AccessToken == "" {
		return "", zohodomain.NewAuthError(zohodomain.ErrMissingTokenField, "access_token ausente")
	}

	// a biblioteca calcula Expiry pelo relógio real a partir de expires_in
	expiresIn := tm.cfg.DefaultTokenExpiry
	if !tok.Expiry.IsZero() {
		expiresIn = time.Until(tok.Expiry)
	}

	if tok.RefreshToken != "" {
		tm.refreshToken = tok.RefreshToken
	}

	tm.token = &AccessToken{
		Value:     tok.AccessToken,
		ExpiresAt: CalculateTokenExpiration(issuedAt, expiresIn, tm.cfg.TokenRefreshSkew),
	}

	logrus.WithField("expires_at", tm.token.ExpiresAt.Format(time.RFC3339)).Info("zoho: access token refreshed")

	return tm.token.Value, nil
}
