package zohodomain

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	ErrTokenRefresh      = errors.New("falha ao renovar o token de acesso")
	ErrMissingTokenField = errors.New("resposta de token sem campos obrigatórios")
	ErrRateLimited       = errors.New("limite de requisições da API excedido")
	ErrMissingRoot       = errors.New("payload sem o campo raiz esperado")
	ErrInvalidJSON       = errors.New("payload não é um JSON válido")
)

// códigos de erro da API que indicam excesso de requisições
var rateLimitCodes = map[int]bool{
	44: true,
	45: true,
}

// ErrorResponse representa o corpo de erro da API contábil
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IsRateLimit verifica se o código devolvido pela API é de limite de requisições
func (e ErrorResponse) IsRateLimit() bool {
	return rateLimitCodes[e.Code]
}

// AuthError indica falha na troca do refresh token por um token de acesso.
type AuthError struct {
	Err     error
	Details string
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("auth: %v: %s", e.Err, e.Details)
	}
	return fmt.Sprintf("auth: %v", e.Err)
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um erro de autenticação com detalhes
func NewAuthError(err error, details string) *AuthError {
	return &AuthError{Err: err, Details: details}
}

// UpstreamHTTPError é uma resposta fora da faixa 2xx.
type UpstreamHTTPError struct {
	Status   int
	Code     int
	Body     string
	Endpoint string
	Params   url.Values
}

// Error implementa a interface error
func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("upstream: %s?%s respondeu %d: %s", e.Endpoint, e.Params.Encode(), e.Status, e.Body)
}

// RateLimited indica se o erro pertence à classe de limite de requisições.
func (e *UpstreamHTTPError) RateLimited() bool {
	return e.Status == http.StatusTooManyRequests || rateLimitCodes[e.Code]
}

// Unwrap retorna ErrRateLimited quando a resposta é de limite de requisições
func (e *UpstreamHTTPError) Unwrap() error {
	if e.RateLimited() {
		return ErrRateLimited
	}
	return nil
}

// MalformedPayloadError indica corpo ilegível ou sem o campo raiz esperado.
type MalformedPayloadError struct {
	Err      error
	Endpoint string
	Root     string
}

// Error implementa a interface error
func (e *MalformedPayloadError) Error() string {
	if e.Root != "" {
		return fmt.Sprintf("payload: %s (raiz %q): %v", e.Endpoint, e.Root, e.Err)
	}
	return fmt.Sprintf("payload: %s: %v", e.Endpoint, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// RequiredCallError marca a falha de uma chamada obrigatória, que interrompe o fluxo chamador.
type RequiredCallError struct {
	Endpoint string
	Params   url.Values
	Err      error
}

// Error implementa a interface error
func (e *RequiredCallError) Error() string {
	return fmt.Sprintf("chamada obrigatória %s falhou: %v", e.Endpoint, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *RequiredCallError) Unwrap() error {
	return e.Err
}

// IsAuthError verifica se o erro é de autenticação
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsUpstreamHTTPError verifica se o erro é uma resposta HTTP fora da faixa 2xx
func IsUpstreamHTTPError(err error) bool {
	var target *UpstreamHTTPError
	return errors.As(err, &target)
}

// IsMalformedPayloadError verifica se o erro é de payload ilegível
func IsMalformedPayloadError(err error) bool {
	var target *MalformedPayloadError
	return errors.As(err, &target)
}

// IsRequiredCallError verifica se o erro veio de uma chamada obrigatória
func IsRequiredCallError(err error) bool {
	var target *RequiredCallError
	return errors.As(err, &target)
}

// IsRateLimited verifica se o erro é de limite de requisições
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// StatusOf devolve o status HTTP de um UpstreamHTTPError na cadeia, ou zero.
func StatusOf(err error) int {
	var target *UpstreamHTTPError
	if errors.As(err, &target) {
		return target.Status
	}
	return 0
}
