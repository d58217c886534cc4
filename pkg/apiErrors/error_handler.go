package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrExternalService  = "SRV_003" // Erro em serviço externo
	ErrCommunication    = "SRV_004" // Erro de comunicação
	ErrJobRunning       = "SRV_005" // Tarefa do agendador já em execução
	ErrNotFound         = "SRV_006" // Rota inexistente
	ErrMethodNotAllowed = "SRV_007" // Método não aceito pela rota

	// Erros da API contábil
	ErrUpstreamAuth        = "UPS_001" // Falha na troca do token de acesso
	ErrUpstreamRequired    = "UPS_002" // Consulta obrigatória falhou
	ErrUpstreamRateLimited = "UPS_003" // Limite de requisições esgotado
	ErrUpstreamMalformed   = "UPS_004" // Resposta ilegível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrJobRunning:            http.StatusConflict,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrUpstreamAuth:          http.StatusBadGateway,
	ErrUpstreamRequired:      http.StatusBadGateway,
	ErrUpstreamRateLimited:   http.StatusServiceUnavailable,
	ErrUpstreamMalformed:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// UpstreamDetails identifica a chamada que falhou.
type UpstreamDetails struct {
	Endpoint string `json:"endpoint"`
	Params   string `json:"params,omitempty"`
	Status   int    `json:"status,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError classifica erros da integração contábil. Erros desconhecidos viram SRV_001.
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var required *zohodomain.RequiredCallError
	switch {
	case zohodomain.IsAuthError(err):
		return APIError{Code: ErrUpstreamAuth, Message: err.Error()}
	case errors.As(err, &required):
		return APIError{
			Code:    ErrUpstreamRequired,
			Message: err.Error(),
			Details: UpstreamDetails{
				Endpoint: required.Endpoint,
				Params:   required.Params.Encode(),
				Status:   zohodomain.StatusOf(err),
			},
		}
	case zohodomain.IsRateLimited(err):
		return APIError{Code: ErrUpstreamRateLimited, Message: err.Error(), Details: upstreamDetails(err)}
	case zohodomain.IsMalformedPayloadError(err):
		return APIError{Code: ErrUpstreamMalformed, Message: err.Error()}
	case zohodomain.IsUpstreamHTTPError(err):
		return APIError{Code: ErrExternalService, Message: err.Error(), Details: upstreamDetails(err)}
	}

	return APIError{Code: ErrInternalServer, Message: err.Error()}
}

func upstreamDetails(err error) any {
	var httpErr *zohodomain.UpstreamHTTPError
	if !errors.As(err, &httpErr) {
		return nil
	}
	return UpstreamDetails{
		Endpoint: httpErr.Endpoint,
		Params:   httpErr.Params.Encode(),
		Status:   httpErr.Status,
	}
}

// WriteFromError classifica o erro e escreve a resposta.
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
