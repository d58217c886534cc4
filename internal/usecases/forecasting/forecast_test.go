package forecasting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

var start = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func bucket(b domain.Bucket, amount int64) domain.BucketTotal {
	return domain.BucketTotal{Bucket: b, Amount: decimal.NewFromInt(amount), Count: 1}
}

func payables() domain.AgingReport {
	return domain.AgingReport{
		Kind: domain.AgingPayables,
		Entities: []domain.EntityAging{
			{Entity: "Fornecedor A", Buckets: []domain.BucketTotal{
				bucket(domain.BucketCurrent, 1000),
				bucket(domain.Bucket1To15, 0),
				bucket(domain.Bucket16To30, 2000),
				bucket(domain.Bucket31To45, 0),
				bucket(domain.BucketOver45, 500),
			}},
			{Entity: "Fornecedor B", Buckets: []domain.BucketTotal{
				bucket(domain.Bucket1To15, 3000),
				bucket(domain.Bucket31To45, 4000),
			}},
		},
	}
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name     string
		horizon  int
		validate func(t *testing.T, payments []domain.ScheduledPayment)
	}{
		{
			name:    "Horizonte de 30 dias inclui até 16-30",
			horizon: 30,
			validate: func(t *testing.T, payments []domain.ScheduledPayment) {
				require.Len(t, payments, 3)
				assert.Equal(t, domain.BucketCurrent, payments[0].Bucket)
				assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), payments[0].Date)
				assert.Equal(t, "Fornecedor B", payments[1].Entity)
				assert.Equal(t, time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC), payments[1].Date)
				assert.Equal(t, time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC), payments[2].Date)
			},
		},
		{
			name:    "Horizonte de 60 dias inclui 45+",
			horizon: 60,
			validate: func(t *testing.T, payments []domain.ScheduledPayment) {
				require.Len(t, payments, 5)
				assert.Equal(t, domain.BucketOver45, payments[4].Bucket)
				assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), payments[4].Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Schedule(payables(), start, tt.horizon))
		})
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		horizon  int
		wantErr  error
		validate func(t *testing.T, f domain.Forecast)
	}{
		{
			name:    "Saldo suficiente sem falta de caixa",
			balance: 20000,
			horizon: 45,
			validate: func(t *testing.T, f domain.Forecast) {
				assert.Len(t, f.Days, 46)
				assert.True(t, f.TotalOutflow.Equal(decimal.NewFromInt(10000)))
				assert.True(t, f.EndingBalance.Equal(decimal.NewFromInt(10000)))
				assert.True(t, f.LowestBalance.Equal(decimal.NewFromInt(10000)))
				assert.Nil(t, f.FirstShortfall)
				assert.True(t, f.Days[0].Balance.Equal(decimal.NewFromInt(19000)))
			},
		},
		{
			name:    "Primeira falta de caixa é registrada",
			balance: 5000,
			horizon: 30,
			validate: func(t *testing.T, f domain.Forecast) {
				require.NotNil(t, f.FirstShortfall)
				assert.Equal(t, time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC), *f.FirstShortfall)
				assert.True(t, f.LowestBalance.Equal(decimal.NewFromInt(-1000)))
				assert.True(t, f.EndingBalance.Equal(decimal.NewFromInt(-1000)))
			},
		},
		{
			name:    "Horizonte fora da lista é rejeitado",
			balance: 100,
			horizon: 7,
			wantErr: ErrInvalidHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast, err := Project(decimal.NewFromInt(tt.balance), payables(), start, tt.horizon)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.horizon, forecast.HorizonDays)
			tt.validate(t, forecast)
		})
	}
}
