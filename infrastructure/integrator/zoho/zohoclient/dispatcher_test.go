package zohoclient

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
)

const balancePayload = `{"code":0,"balance_sheet":[{"name":"Assets","total":100}]}`

func params(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

func TestDispatcher_CacheWithinTTL(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, balancePayload), nil, nil)
	ctx := context.Background()
	req := Request{Endpoint: "reports/balancesheet", Params: params("to_date", "2026-02-28", "show_rows", "non_zero")}

	_, err := h.dispatcher.Call(ctx, req)
	require.NoError(t, err)

	// mesma chamada com parâmetros em outra ordem
	_, err = h.dispatcher.Call(ctx, Request{Endpoint: "reports/balancesheet", Params: params("show_rows", "non_zero", "to_date", "2026-02-28")})
	require.NoError(t, err)
	assert.Equal(t, int32(1), h.apiCalls.Load())

	h.clock.Advance(time.Hour)

	_, err = h.dispatcher.Call(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), h.apiCalls.Load())
}

func TestDispatcher_DistinctParamsAreNotShared(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, balancePayload), nil, nil)
	ctx := context.Background()

	_, err := h.dispatcher.Call(ctx, Request{Endpoint: "reports/balancesheet", Params: params("to_date", "2026-01-31")})
	require.NoError(t, err)
	_, err = h.dispatcher.Call(ctx, Request{Endpoint: "reports/balancesheet", Params: params("to_date", "2026-02-28")})
	require.NoError(t, err)

	assert.Equal(t, int32(2), h.apiCalls.Load())
}

func TestDispatcher_Spacing(t *testing.T) {
	h := newHarness(t, jsonHandler(http.StatusOK, balancePayload), nil, nil)
	ctx := context.Background()

	for _, to := range []string{"2026-01-31", "2026-02-28", "2026-03-31"} {
		_, err := h.dispatcher.Call(ctx, Request{Endpoint: "reports/balancesheet", Params: params("to_date", to)})
		require.NoError(t, err)
	}

	dispatched := h.dispatchedCopy()
	require.Len(t, dispatched, 3)
	for i := 1; i < len(dispatched); i++ {
		assert.GreaterOrEqual(t, dispatched[i].Sub(dispatched[i-1]), 2*time.Second)
	}
	assert.Equal(t, dispatched[2], h.dispatcher.LastDispatch())
}

func TestDispatcher_Errors(t *testing.T) {
	tests := []struct {
		name     string
		api      http.HandlerFunc
		token    http.HandlerFunc
		request  Request
		mutate   func(cfg *config.Config)
		validate func(t *testing.T, h *harness, payload []byte, err error)
	}{
		{
			name: "429 repete com recuo exponencial até ter sucesso",
			api: sequence(
				jsonHandler(http.StatusTooManyRequests, `{"code":44,"message":"too many"}`),
				jsonHandler(http.StatusTooManyRequests, `{"code":44,"message":"too many"}`),
				jsonHandler(http.StatusOK, balancePayload),
			),
			mutate: func(cfg *config.Config) { cfg.Dispatcher.Spacing = 0 },
			validate: func(t *testing.T, h *harness, payload []byte, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, payload)
				assert.Equal(t, int32(3), h.apiCalls.Load())
				assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, h.sleepsCopy())
			},
		},
		{
			name:   "Limite de requisições esgota as tentativas",
			api:    jsonHandler(http.StatusBadRequest, `{"code":45,"message":"limit"}`),
			mutate: func(cfg *config.Config) { cfg.Dispatcher.Spacing = 0 },
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				require.Error(t, err)
				assert.True(t, zohodomain.IsRateLimited(err))
				assert.Equal(t, http.StatusBadRequest, zohodomain.StatusOf(err))
				assert.Equal(t, int32(4), h.apiCalls.Load())
				assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}, h.sleepsCopy())
			},
		},
		{
			name: "Erro 500 não é repetido",
			api:  jsonHandler(http.StatusInternalServerError, `{"code":1,"message":"boom"}`),
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				require.Error(t, err)
				assert.True(t, zohodomain.IsUpstreamHTTPError(err))
				assert.False(t, zohodomain.IsRequiredCallError(err))
				assert.Equal(t, int32(1), h.apiCalls.Load())
			},
		},
		{
			name:    "Chamada obrigatória carrega endpoint, parâmetros e status",
			api:     jsonHandler(http.StatusInternalServerError, `{"code":1,"message":"boom"}`),
			request: Request{Endpoint: "reports/profitandloss", Params: params("from_date", "2026-01-01"), Required: true},
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				var required *zohodomain.RequiredCallError
				require.ErrorAs(t, err, &required)
				assert.Equal(t, "reports/profitandloss", required.Endpoint)
				assert.Equal(t, "2026-01-01", required.Params.Get("from_date"))
				assert.Equal(t, http.StatusInternalServerError, zohodomain.StatusOf(err))
			},
		},
		{
			name: "401 renova o token uma vez e repete",
			api: sequence(
				jsonHandler(http.StatusUnauthorized, `{"code":57,"message":"invalid token"}`),
				jsonHandler(http.StatusOK, balancePayload),
			),
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, int32(2), h.apiCalls.Load())
				assert.Equal(t, int32(2), h.tokenCalls.Load())
			},
		},
		{
			name: "401 persistente é devolvido",
			api:  jsonHandler(http.StatusUnauthorized, `{"code":57,"message":"invalid token"}`),
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				assert.Equal(t, http.StatusUnauthorized, zohodomain.StatusOf(err))
				assert.Equal(t, int32(2), h.apiCalls.Load())
			},
		},
		{
			name: "Falha na troca do token é AuthError",
			api:  jsonHandler(http.StatusOK, balancePayload),
			token: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_code"}`))
			},
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				assert.True(t, zohodomain.IsAuthError(err))
				assert.Equal(t, int32(0), h.apiCalls.Load())
			},
		},
		{
			name: "Resposta de token sem access_token é AuthError",
			api:  jsonHandler(http.StatusOK, balancePayload),
			token: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"expires_in":3600}`))
			},
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				assert.True(t, zohodomain.IsAuthError(err))
			},
		},
		{
			name: "Corpo que não é JSON é MalformedPayloadError",
			api: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
			validate: func(t *testing.T, h *harness, _ []byte, err error) {
				assert.True(t, zohodomain.IsMalformedPayloadError(err))
				assert.ErrorIs(t, err, zohodomain.ErrInvalidJSON)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.api, tt.token, tt.mutate)

			req := tt.request
			if req.Endpoint == "" {
				req = Request{Endpoint: "reports/balancesheet", Params: params("to_date", "2026-02-28")}
			}

			payload, err := h.dispatcher.Call(context.Background(), req)
			tt.validate(t, h, payload, err)
		})
	}
}

func TestDispatcher_SendsOrganizationAndToken(t *testing.T) {
	var authorization string
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		jsonHandler(http.StatusOK, balancePayload)(w, r)
	}, nil, nil)

	_, err := h.dispatcher.Call(context.Background(), Request{Endpoint: "reports/balancesheet", Params: params("to_date", "2026-02-28")})
	require.NoError(t, err)

	assert.Equal(t, "Zoho-oauthtoken tok-1", authorization)
	assert.True(t, h.queryContains(0, "organization_id=org-1"))
}

func TestDispatcher_FailedCallIsNotCached(t *testing.T) {
	h := newHarness(t, sequence(
		jsonHandler(http.StatusInternalServerError, `{}`),
		jsonHandler(http.StatusOK, balancePayload),
	), nil, nil)
	req := Request{Endpoint: "reports/balancesheet", Params: params("to_date", "2026-02-28")}

	_, err := h.dispatcher.Call(context.Background(), req)
	require.Error(t, err)
	_, err = h.dispatcher.Call(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, h.session.Cache.Len())
}
