package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

func TestCliWindow(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name     string
		from     string
		to       string
		validate func(t *testing.T, window domain.QueryWindow, err error)
	}{
		{
			name: "Sem datas usa o mês corrente",
			validate: func(t *testing.T, window domain.QueryWindow, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, window.From.Day())
			},
		},
		{
			name: "Somente data final começa no primeiro dia do mês",
			to:   "2026-02-20",
			validate: func(t *testing.T, window domain.QueryWindow, err error) {
				require.NoError(t, err)
				assert.Equal(t, date("2026-02-01"), window.From)
				assert.Equal(t, date("2026-02-20"), window.To)
			},
		},
		{
			name: "Intervalo explícito",
			from: "2026-01-10",
			to:   "2026-03-05",
			validate: func(t *testing.T, window domain.QueryWindow, err error) {
				require.NoError(t, err)
				assert.Equal(t, date("2026-01-10"), window.From)
				assert.Equal(t, date("2026-03-05"), window.To)
			},
		},
		{
			name: "Data malformada",
			from: "10/01/2026",
			to:   "2026-03-05",
			validate: func(t *testing.T, window domain.QueryWindow, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Início depois do fim",
			from: "2026-03-10",
			to:   "2026-03-05",
			validate: func(t *testing.T, window domain.QueryWindow, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidWindow)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windowFlags.from, windowFlags.to = tt.from, tt.to
			t.Cleanup(func() { windowFlags.from, windowFlags.to = "", "" })

			window, err := cliWindow()
			tt.validate(t, window, err)
		})
	}
}
