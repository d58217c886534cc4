package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledPayment é um pagamento previsto a partir da faixa de vencimento do fornecedor.
type ScheduledPayment struct {
	Entity string          `json:"entity"`
	Bucket Bucket          `json:"bucket"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type ForecastDay struct {
	Date    time.Time       `json:"date"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// Forecast é a projeção diária do saldo bancário no horizonte escolhido.
type Forecast struct {
	Start           time.Time          `json:"start"`
	HorizonDays     int                `json:"horizon_days"`
	StartingBalance decimal.Decimal    `json:"starting_balance"`
	Payments        []ScheduledPayment `json:"payments"`
	Days            []ForecastDay      `json:"days"`
	TotalOutflow    decimal.Decimal    `json:"total_outflow"`
	EndingBalance   decimal.Decimal    `json:"ending_balance"`
	LowestBalance   decimal.Decimal    `json:"lowest_balance"`
	FirstShortfall  *time.Time         `json:"first_shortfall,omitempty"`
}

func (f Forecast) Rounded() Forecast {
	out := f
	out.StartingBalance = f.StartingBalance.Round(1)
	out.TotalOutflow = f.TotalOutflow.Round(1)
	out.EndingBalance = f.EndingBalance.Round(1)
	out.LowestBalance = f.LowestBalance.Round(1)
	out.Payments = make([]ScheduledPayment, len(f.Payments))
	for i, p := range f.Payments {
		p.Amount = p.Amount.Round(1)
		out.Payments[i] = p
	}
	out.Days = make([]ForecastDay, len(f.Days))
	for i, d := range f.Days {
		out.Days[i] = ForecastDay{Date: d.Date, Outflow: d.Outflow.Round(1), Balance: d.Balance.Round(1)}
	}
	return out
}
