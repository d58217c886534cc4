package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	authmocks "github.com/vfg2006/finance-dashboard-api/internal/usecases/authenticating/mocks"
)

func TestChain(t *testing.T) {
	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		path     string
		header   string
		setup    func(auth *authmocks.MockAuthenticator)
		expected int
	}{
		{
			name:     "Healthcheck passa sem token",
			path:     "/healthcheck",
			setup:    func(auth *authmocks.MockAuthenticator) {},
			expected: http.StatusNoContent,
		},
		{
			name:     "Relatório exige token",
			path:     "/v1/reports/dashboard",
			setup:    func(auth *authmocks.MockAuthenticator) {},
			expected: http.StatusUnauthorized,
		},
		{
			name:   "Token válido chega ao handler",
			path:   "/v1/reports/dashboard",
			header: "Bearer good",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("good").Return(&domain.Claims{
					Role:             domain.RoleViewer,
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
				}, nil)
			},
			expected: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Chain(cfg, auth).Then(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
