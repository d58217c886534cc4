package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "Valores padrão",
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "8080", cfg.Server.Port)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, 2*time.Second, cfg.Dispatcher.Spacing)
				assert.Equal(t, time.Hour, cfg.Dispatcher.CacheTTL)
				assert.Equal(t, 800*time.Millisecond, cfg.Dispatcher.RetryBaseDelay)
				assert.Equal(t, "AED", cfg.Engine.BaseCurrency)
				assert.Equal(t, []string{"USD:3.6725"}, cfg.Engine.FXRates)
				assert.Equal(t, 30, cfg.Engine.ForecastHorizonDays)
				assert.Equal(t, "canonical", cfg.Engine.CashAvailablePolicy)
				assert.False(t, cfg.Zoho.IsConfigured())
			},
		},
		{
			name: "Variáveis de ambiente sobrescrevem os padrões",
			env: map[string]string{
				"PORT":                  "9090",
				"FX_RATES":              "USD:3.6725,EUR:4.01",
				"DISPATCH_SPACING":      "500ms",
				"MINIMUM_RESERVE":       "25000.50",
				"FORECAST_HORIZON_DAYS": "60",
				"ZOHO_CLIENT_ID":        "id",
				"ZOHO_CLIENT_SECRET":    "secret",
				"ZOHO_REFRESH_TOKEN":    "refresh",
				"ZOHO_ORGANIZATION_ID":  "org",
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "9090", cfg.Server.Port)
				assert.Equal(t, []string{"USD:3.6725", "EUR:4.01"}, cfg.Engine.FXRates)
				assert.Equal(t, 500*time.Millisecond, cfg.Dispatcher.Spacing)
				assert.Equal(t, "25000.50", cfg.Engine.MinimumReserve)
				assert.Equal(t, 60, cfg.Engine.ForecastHorizonDays)
				assert.True(t, cfg.Zoho.IsConfigured())
			},
		},
		{
			name: "Horizonte fora da lista é rejeitado",
			env:  map[string]string{"FORECAST_HORIZON_DAYS": "7"},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				assert.Nil(t, cfg)
			},
		},
		{
			name: "Política desconhecida é rejeitada",
			env:  map[string]string{"CASH_AVAILABLE_POLICY": "optimistic"},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			tt.validate(t, cfg, err)
		})
	}
}

func TestValidate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	cfg.Dispatcher.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg.Dispatcher.PageSize = 200
	cfg.Engine.BaseCurrency = "DIRHAM"
	assert.Error(t, cfg.Validate())
}
