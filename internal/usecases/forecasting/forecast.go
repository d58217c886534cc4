package forecasting

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

var ErrInvalidHorizon = errors.New("horizonte de previsão inválido")

// Horizons lista os horizontes aceitos, em dias.
var Horizons = []int{30, 45, 60, 90}

// dias após a data de referência em que se espera pagar cada faixa
var bucketOffsets = map[domain.Bucket]int{
	domain.BucketCurrent: 0,
	domain.Bucket1To15:   7,
	domain.Bucket16To30:  23,
	domain.Bucket31To45:  38,
	domain.BucketOver45:  60,
}

func ValidHorizon(days int) bool {
	for _, h := range Horizons {
		if h == days {
			return true
		}
	}
	return false
}

// Schedule gera os pagamentos previstos a partir das faixas por fornecedor do aging de contas a pagar.
// Somente pagamentos com data dentro do horizonte entram na agenda.
func Schedule(payables domain.AgingReport, start time.Time, horizonDays int) []domain.ScheduledPayment {
	start = utils.StartOfDay(start)
	limit := start.AddDate(0, 0, horizonDays)

	payments := []domain.ScheduledPayment{}
	for _, entity := range payables.Entities {
		for _, bucket := range entity.Buckets {
			if !bucket.Amount.IsPositive() {
				continue
			}
			date := start.AddDate(0, 0, bucketOffsets[bucket.Bucket])
			if date.After(limit) {
				continue
			}
			payments = append(payments, domain.ScheduledPayment{
				Entity: entity.Entity,
				Bucket: bucket.Bucket,
				Date:   date,
				Amount: bucket.Amount,
			})
		}
	}

	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].Date.Equal(payments[j].Date) {
			return payments[i].Date.Before(payments[j].Date)
		}
		return payments[i].Entity < payments[j].Entity
	})

	return payments
}

// Project monta a projeção diária, do dia inicial até start+horizonte inclusive,
// debitando os pagamentos agendados do saldo inicial.
func Project(startingBalance decimal.Decimal, payables domain.AgingReport, start time.Time, horizonDays int) (domain.Forecast, error) {
	if !ValidHorizon(horizonDays) {
		return domain.Forecast{}, fmt.Errorf("%w: %d", ErrInvalidHorizon, horizonDays)
	}

	start = utils.StartOfDay(start)
	payments := Schedule(payables, start, horizonDays)

	outflowByDay := map[string]decimal.Decimal{}
	for _, p := range payments {
		key := p.Date.Format(time.DateOnly)
		outflowByDay[key] = outflowByDay[key].Add(p.Amount)
	}

	forecast := domain.Forecast{
		Start:           start,
		HorizonDays:     horizonDays,
		StartingBalance: startingBalance,
		Payments:        payments,
		Days:            make([]domain.ForecastDay, 0, horizonDays+1),
		LowestBalance:   startingBalance,
	}

	balance := startingBalance
	for offset := 0; offset <= horizonDays; offset++ {
		date := start.AddDate(0, 0, offset)
		outflow := outflowByDay[date.Format(time.DateOnly)]
		balance = balance.Sub(outflow)
		forecast.TotalOutflow = forecast.TotalOutflow.Add(outflow)

		if balance.LessThan(forecast.LowestBalance) {
			forecast.LowestBalance = balance
		}
		if balance.IsNegative() && forecast.FirstShortfall == nil {
			shortfall := date
			forecast.FirstShortfall = &shortfall
		}

		forecast.Days = append(forecast.Days, domain.ForecastDay{Date: date, Outflow: outflow, Balance: balance})
	}
	forecast.EndingBalance = balance

	return forecast, nil
}
