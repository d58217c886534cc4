package domain

import (
	"github.com/shopspring/decimal"
)

// LiquiditySnapshot é a posição de caixa com queima mensal e fôlego em meses.
// RunwayMonths é nil quando a queima é zero (fôlego ilimitado).
type LiquiditySnapshot struct {
	Window          QueryWindow      `json:"window"`
	CashOnHand      decimal.Decimal  `json:"cash_on_hand"`
	PeriodDays      int              `json:"period_days"`
	PeriodBurn      decimal.Decimal  `json:"period_burn"`
	MonthlyBurn     decimal.Decimal  `json:"monthly_burn"`
	RunwayMonths    *decimal.Decimal `json:"runway_months"`
	RunwayUnbounded bool             `json:"runway_unbounded"`
}

func (l LiquiditySnapshot) Rounded() LiquiditySnapshot {
	out := l
	out.CashOnHand = l.CashOnHand.Round(1)
	out.PeriodBurn = l.PeriodBurn.Round(1)
	out.MonthlyBurn = l.MonthlyBurn.Round(1)
	if l.RunwayMonths != nil {
		v := l.RunwayMonths.Round(1)
		out.RunwayMonths = &v
	}
	return out
}

// CashAvailability expõe o valor disponível para retirada e todos os componentes usados,
// permitindo recalcular qualquer fórmula alternativa sem nova consulta.
type CashAvailability struct {
	Policy             string          `json:"policy"`
	CashProfit         decimal.Decimal `json:"cash_profit"`
	AccountsReceivable decimal.Decimal `json:"accounts_receivable"`
	PrepaidExpenses    decimal.Decimal `json:"prepaid_expenses"`
	AccountsPayable    decimal.Decimal `json:"accounts_payable"`
	BankTotal          decimal.Decimal `json:"bank_total"`
	MinimumReserve     decimal.Decimal `json:"minimum_reserve"`
	CashAvailable      decimal.Decimal `json:"cash_available"`
	Shortage           bool            `json:"shortage"`
}

// Rounded arredonda os componentes; Shortage segue o valor disponível já arredondado.
func (c CashAvailability) Rounded() CashAvailability {
	out := c
	out.CashProfit = c.CashProfit.Round(1)
	out.AccountsReceivable = c.AccountsReceivable.Round(1)
	out.PrepaidExpenses = c.PrepaidExpenses.Round(1)
	out.AccountsPayable = c.AccountsPayable.Round(1)
	out.BankTotal = c.BankTotal.Round(1)
	out.MinimumReserve = c.MinimumReserve.Round(1)
	out.CashAvailable = c.CashAvailable.Round(1)
	out.Shortage = out.CashAvailable.IsNegative()
	return out
}
