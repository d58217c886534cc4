package liquidity

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

var daysPerMonth = decimal.NewFromInt(30)

// Snapshot calcula a queima mensal e o fôlego a partir do resumo de fluxo de caixa.
// A queima é a saída operacional líquida do período, normalizada para 30 dias pela
// quantidade real de dias da janela.
func Snapshot(summary domain.CashFlowSummary, cashOnHand decimal.Decimal) domain.LiquiditySnapshot {
	days := summary.Window.Days()

	burn := summary.Operating.Outflow.Sub(summary.Operating.Inflow)
	if burn.IsNegative() {
		burn = decimal.Zero
	}

	snapshot := domain.LiquiditySnapshot{
		Window:      summary.Window,
		CashOnHand:  cashOnHand,
		PeriodDays:  days,
		PeriodBurn:  burn,
		MonthlyBurn: burn.Div(decimal.NewFromInt(int64(days))).Mul(daysPerMonth),
	}

	if snapshot.MonthlyBurn.IsZero() {
		snapshot.RunwayUnbounded = true
		return snapshot
	}

	runway := cashOnHand.Div(snapshot.MonthlyBurn)
	snapshot.RunwayMonths = &runway
	return snapshot
}
