package reporting

import (
	"time"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// Dashboard reúne todas as figuras de uma janela de consulta.
type Dashboard struct {
	Window            domain.QueryWindow           `json:"window"`
	GeneratedAt       time.Time                    `json:"generated_at"`
	BaseCurrency      string                       `json:"base_currency"`
	ProfitAndLoss     domain.ProfitAndLoss         `json:"profit_and_loss"`
	CashProfitAndLoss domain.ProfitAndLoss         `json:"cash_profit_and_loss"`
	Balance           domain.BalanceComponents     `json:"balance"`
	Receivables       domain.AgingReport           `json:"receivables"`
	Payables          domain.AgingReport           `json:"payables"`
	CashFlow          domain.CashFlowSummary       `json:"cash_flow"`
	BankActivity      []domain.BankAccountActivity `json:"bank_activity"`
	Liquidity         domain.LiquiditySnapshot     `json:"liquidity"`
	CashAvailability  domain.CashAvailability      `json:"cash_availability"`
	Forecast          domain.Forecast              `json:"forecast"`
	Monthly           []domain.MonthlyProfit       `json:"monthly"`
	Contacts          domain.ContactsSummary       `json:"contacts"`
	Customers         domain.CustomerInsights      `json:"customers"`
	Vendors           domain.VendorInsights        `json:"vendors"`
	Warnings          []Warning                    `json:"warnings"`
}

// Rounded arredonda todas as figuras para uma casa decimal.
func (d Dashboard) Rounded() Dashboard {
	out := d
	out.ProfitAndLoss = d.ProfitAndLoss.Rounded()
	out.CashProfitAndLoss = d.CashProfitAndLoss.Rounded()
	out.Balance = d.Balance.Rounded()
	out.Receivables = d.Receivables.Rounded()
	out.Payables = d.Payables.Rounded()
	out.CashFlow = d.CashFlow.Rounded()
	out.BankActivity = roundActivity(d.BankActivity)
	out.Liquidity = d.Liquidity.Rounded()
	out.CashAvailability = d.CashAvailability.Rounded()
	out.Forecast = d.Forecast.Rounded()
	out.Monthly = roundMonthly(d.Monthly)
	out.Contacts = roundContacts(d.Contacts)
	out.Customers = d.Customers.Rounded()
	out.Vendors = d.Vendors.Rounded()
	if out.Warnings == nil {
		out.Warnings = []Warning{}
	}
	return out
}

func roundActivity(in []domain.BankAccountActivity) []domain.BankAccountActivity {
	out := make([]domain.BankAccountActivity, len(in))
	for i, a := range in {
		a.Deposits = a.Deposits.Round(1)
		a.Withdrawals = a.Withdrawals.Round(1)
		a.Net = a.Net.Round(1)
		out[i] = a
	}
	return out
}

func roundMonthly(in []domain.MonthlyProfit) []domain.MonthlyProfit {
	out := make([]domain.MonthlyProfit, len(in))
	for i, m := range in {
		m.CashNet = m.CashNet.Round(1)
		m.AccrualNet = m.AccrualNet.Round(1)
		out[i] = m
	}
	return out
}

func roundContacts(c domain.ContactsSummary) domain.ContactsSummary {
	c.OutstandingReceivable = c.OutstandingReceivable.Round(1)
	c.OutstandingPayable = c.OutstandingPayable.Round(1)
	return c
}
