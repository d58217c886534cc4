package domain

import (
	"github.com/shopspring/decimal"
)

// Basis é o regime contábil usado no relatório de resultados.
type Basis string

const (
	BasisCash    Basis = "cash"
	BasisAccrual Basis = "accrual"
)

func (b Basis) Valid() bool {
	return b == BasisCash || b == BasisAccrual
}

// FinancialMetrics é a cascata de resultados extraída do relatório de lucros e perdas.
type FinancialMetrics struct {
	Sales               Figure          `json:"sales"`
	COGS                Figure          `json:"cogs"`
	GrossProfit         Figure          `json:"gross_profit"`
	OperatingExpenses   Figure          `json:"operating_expenses"`
	OperatingProfit     Figure          `json:"operating_profit"`
	NetProfit           Figure          `json:"net_profit"`
	NonOperatingIncome  decimal.Decimal `json:"non_operating_income"`
	NonOperatingExpense decimal.Decimal `json:"non_operating_expense"`
}

func (m FinancialMetrics) Rounded() FinancialMetrics {
	return FinancialMetrics{
		Sales:               m.Sales.Rounded(),
		COGS:                m.COGS.Rounded(),
		GrossProfit:         m.GrossProfit.Rounded(),
		OperatingExpenses:   m.OperatingExpenses.Rounded(),
		OperatingProfit:     m.OperatingProfit.Rounded(),
		NetProfit:           m.NetProfit.Rounded(),
		NonOperatingIncome:  m.NonOperatingIncome.Round(1),
		NonOperatingExpense: m.NonOperatingExpense.Round(1),
	}
}

// ExpenseItem é um filho direto do nó de despesas operacionais.
type ExpenseItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ProfitAndLoss agrupa as métricas e o detalhamento de despesas de uma janela.
type ProfitAndLoss struct {
	Window           QueryWindow            `json:"window"`
	Basis            Basis                  `json:"basis"`
	Metrics          FinancialMetrics       `json:"metrics"`
	ExpenseBreakdown []ExpenseItem          `json:"expense_breakdown"`
	Ambiguities      []ComputationAmbiguity `json:"ambiguities,omitempty"`
}

func (p ProfitAndLoss) Rounded() ProfitAndLoss {
	out := p
	out.Metrics = p.Metrics.Rounded()
	out.ExpenseBreakdown = make([]ExpenseItem, len(p.ExpenseBreakdown))
	for i, item := range p.ExpenseBreakdown {
		out.ExpenseBreakdown[i] = ExpenseItem{Name: item.Name, Amount: item.Amount.Round(1)}
	}
	return out
}

// MonthlyProfit é o lucro líquido de um mês nos dois regimes.
type MonthlyProfit struct {
	Month       string          `json:"month"`
	CashNet     decimal.Decimal `json:"cash_net"`
	AccrualNet  decimal.Decimal `json:"accrual_net"`
	CashSource  Provenance      `json:"cash_source"`
	Unavailable bool            `json:"unavailable,omitempty"`
}
