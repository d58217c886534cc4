package zohoclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request é uma chamada à API. Required marca a chamada como obrigatória: a falha
// é devolvida como RequiredCallError e interrompe o fluxo chamador.
// Decode valida e decodifica o payload; só payloads aceitos por ele vão para o cache.
type Request struct {
	Endpoint string
	Params   url.Values
	Required bool
	Decode   func(payload []byte) error
}

// Sleeper bloqueia pelo tempo informado ou até o contexto ser cancelado.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Dispatcher serializa as chamadas com espaçamento mínimo, consulta o cache antes da
// rede e repete com recuo exponencial apenas falhas de limite de requisições.
type Dispatcher struct {
	session        *Session
	httpClient     *http.Client
	baseURL        string
	organizationID string
	retryAttempts  int
	retryBaseDelay time.Duration
	sleep          Sleeper
	onDispatch     func(req Request, at time.Time)

	mu           sync.Mutex
	lastDispatch time.Time
}

type DispatcherOption func(*Dispatcher)

func WithSleeper(s Sleeper) DispatcherOption {
	return func(d *Dispatcher) { d.sleep = s }
}

func WithDispatchHook(fn func(req Request, at time.Time)) DispatcherOption {
	return func(d *Dispatcher) { d.onDispatch = fn }
}

func WithAPIHTTPClient(c *http.Client) DispatcherOption {
	return func(d *Dispatcher) { d.httpClient = c }
}

func NewDispatcher(cfg *config.Config, session *Session, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		session:        session,
		httpClient:     &http.Client{Timeout: cfg.Zoho.Timeout},
		baseURL:        strings.TrimRight(cfg.Zoho.APIURL, "/"),
		organizationID: cfg.Zoho.OrganizationID,
		retryAttempts:  cfg.Dispatcher.RetryAttempts,
		retryBaseDelay: cfg.Dispatcher.RetryBaseDelay,
		sleep:          sleepContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// LastDispatch devolve o instante da última chamada enviada à rede.
func (d *Dispatcher) LastDispatch() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastDispatch
}

// Call devolve o payload da chamada, do cache quando disponível.
func (d *Dispatcher) Call(ctx context.Context, req Request) ([]byte, error) {
	key := CacheKey(req.Endpoint, req.Params)
	if payload, ok := d.session.Cache.Get(key); ok {
		if err := req.decode(payload); err == nil {
			logrus.WithField("endpoint", req.Endpoint).Debug("zoho: cache hit")
			return payload, nil
		}
		d.session.Cache.Delete(key)
	}

	payload, err := d.callWithRetry(ctx, req)
	if err == nil {
		err = req.decode(payload)
	}
	if err != nil {
		return nil, d.fail(req, err)
	}

	d.session.Cache.Set(key, payload)
	return payload, nil
}

func (r Request) decode(payload []byte) error {
	if r.Decode == nil {
		return nil
	}
	return r.Decode(payload)
}

// fail registra a falha e, em chamadas obrigatórias, a envolve em RequiredCallError.
func (d *Dispatcher) fail(req Request, err error) error {
	fields := logrus.Fields{
		"endpoint": req.Endpoint,
		"params":   req.Params.Encode(),
		"status":   zohodomain.StatusOf(err),
		"error":    err.Error(),
	}
	if req.Required {
		logrus.WithFields(fields).Error("zoho: required call failed")
		return &zohodomain.RequiredCallError{Endpoint: req.Endpoint, Params: req.Params, Err: err}
	}
	logrus.WithFields(fields).Warn("zoho: optional call failed")
	return err
}

// retryPolicy devolve base, 2*base, 4*base... sem aleatoriedade, até retryAttempts tentativas.
func (d *Dispatcher) retryPolicy(ctx context.Context) backoff.BackOff {
	exp := &backoff.ExponentialBackOff{
		InitialInterval:     d.retryBaseDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         backoff.DefaultMaxInterval,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(max(d.retryAttempts, 0))), ctx)
}

func (d *Dispatcher) callWithRetry(ctx context.Context, req Request) ([]byte, error) {
	reauthorized := false
	policy := d.retryPolicy(ctx)
	attempt := 0

	for {
		payload, err := d.dispatch(ctx, req)
		if err == nil {
			return payload, nil
		}

		var httpErr *zohodomain.UpstreamHTTPError
		if !errors.As(err, &httpErr) {
			return nil, err
		}

		// token recusado: renova uma única vez e repete
		if httpErr.Status == http.StatusUnauthorized && !reauthorized {
			logrus.WithField("endpoint", req.Endpoint).Warn("zoho: token rejected, refreshing")
			d.session.Tokens.Invalidate()
			reauthorized = true
			continue
		}

		if !httpErr.RateLimited() {
			return nil, err
		}

		delay := policy.NextBackOff()
		if delay == backoff.Stop {
			return nil, err
		}
		attempt++
		logrus.WithFields(logrus.Fields{
			"endpoint": req.Endpoint,
			"attempt":  attempt,
			"delay":    delay.String(),
		}).Warn("zoho: rate limited, backing off")
		if err := d.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// wait bloqueia até o limitador liberar a próxima chamada e devolve o instante de envio.
func (d *Dispatcher) wait(ctx context.Context) (time.Time, error) {
	now := d.session.now()
	reservation := d.session.Limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)

	if err := d.sleep(ctx, delay); err != nil {
		reservation.CancelAt(now)
		return time.Time{}, err
	}

	return now.Add(delay), nil
}

func (d *Dispatcher) dispatch(ctx context.Context, req Request) ([]byte, error) {
	token, err := d.session.Tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for k, v := range req.Params {
		params[k] = append([]string(nil), v...)
	}
	params.Set("organization_id", d.organizationID)

	requestURL := fmt.Sprintf("%s/%s?%s", d.baseURL, strings.TrimLeft(req.Endpoint, "/"), params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	httpReq.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	httpReq.Header.Set("Accept", "application/json")

	dispatchedAt, err := d.wait(ctx)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.lastDispatch = dispatchedAt
	d.mu.Unlock()
	if d.onDispatch != nil {
		d.onDispatch(req, dispatchedAt)
	}

	callID, _ := utils.GenerateID()
	logrus.WithFields(logrus.Fields{
		"call_id":  callID,
		"endpoint": req.Endpoint,
	}).Debug("zoho: dispatching call")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição para %s: %w", req.Endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta de %s: %w", req.Endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errorResp zohodomain.ErrorResponse
		_ = json.Unmarshal(body, &errorResp)
		return nil, &zohodomain.UpstreamHTTPError{
			Status:   resp.StatusCode,
			Code:     errorResp.Code,
			Body:     string(body),
			Endpoint: req.Endpoint,
			Params:   req.Params,
		}
	}

	if !json.Valid(body) {
		return nil, &zohodomain.MalformedPayloadError{Err: zohodomain.ErrInvalidJSON, Endpoint: req.Endpoint}
	}

	return body, nil
}
