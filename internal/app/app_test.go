package app

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, application *App, err error)
	}{
		{
			name: "Configuração padrão monta todas as dependências",
			validate: func(t *testing.T, application *App, err error) {
				require.NoError(t, err)
				assert.NotNil(t, application.Client)
				assert.NotNil(t, application.Reporting)
				assert.NotNil(t, application.Authenticator)
				application.Close()
			},
		},
		{
			name: "Taxa de câmbio malformada",
			env:  map[string]string{"FX_RATES": "USD-3.67"},
			validate: func(t *testing.T, application *App, err error) {
				assert.Error(t, err)
				assert.Nil(t, application)
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

			cfg, err := config.NewConfig()
			require.NoError(t, err)

			application, err := New(cfg)
			tt.validate(t, application, err)
		})
	}
}
