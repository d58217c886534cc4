package zohodomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "Número", payload: `{"total": 1234.56}`, expected: "1234.56"},
		{name: "String numérica", payload: `{"total": "99.90"}`, expected: "99.9"},
		{name: "Separador de milhar", payload: `{"total": "1,250,000.00"}`, expected: "1250000"},
		{name: "Negativo", payload: `{"total": "-42"}`, expected: "-42"},
		{name: "Vazio", payload: `{"total": ""}`, expected: "0"},
		{name: "Nulo", payload: `{"total": null}`, expected: "0"},
		{name: "Ausente", payload: `{}`, expected: "0"},
		{name: "Texto não numérico", payload: `{"total": "n/a"}`, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Total Amount `json:"total"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &out))
			assert.Equal(t, tt.expected, out.Total.String())
		})
	}
}

func TestNullable(t *testing.T) {
	var out struct {
		Balance    *Amount `json:"balance"`
		AmountPaid *Amount `json:"amount_paid"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"balance": "10.5"}`), &out))

	balance := Nullable(out.Balance)
	assert.True(t, balance.Valid)
	assert.Equal(t, "10.5", balance.Decimal.String())
	assert.False(t, Nullable(out.AmountPaid).Valid)
}

func TestUpstreamHTTPError_RateLimited(t *testing.T) {
	tests := []struct {
		name     string
		err      *UpstreamHTTPError
		expected bool
	}{
		{name: "429", err: &UpstreamHTTPError{Status: 429}, expected: true},
		{name: "Código 44", err: &UpstreamHTTPError{Status: 400, Code: 44}, expected: true},
		{name: "Código 45", err: &UpstreamHTTPError{Status: 400, Code: 45}, expected: true},
		{name: "Outro erro", err: &UpstreamHTTPError{Status: 500, Code: 1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.RateLimited())
			assert.Equal(t, tt.expected, IsRateLimited(tt.err))
		})
	}
}
