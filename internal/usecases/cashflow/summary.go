package cashflow

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// tipos de movimentação bancária que já chegam pelas listagens de pagamentos e despesas
var documentBackedTypes = map[string]bool{
	"customer payment": true,
	"vendor payment":   true,
	"expense":          true,
}

func add(totals *domain.FlowTotals, amount decimal.Decimal, inflow bool) {
	if inflow {
		totals.Inflow = totals.Inflow.Add(amount)
	} else {
		totals.Outflow = totals.Outflow.Add(amount)
	}
	totals.Net = totals.Inflow.Sub(totals.Outflow)
}

// Summarize classifica as transações datadas dentro da janela e totaliza por atividade.
// Valores entram em módulo; a direção vem da classificação. Movimentações bancárias
// de pagamentos e despesas são ignoradas para não contar o mesmo valor duas vezes.
func (c *Classifier) Summarize(window domain.QueryWindow, transactions []domain.Transaction) domain.CashFlowSummary {
	summary := domain.CashFlowSummary{Window: window}
	outside, duplicated := 0, 0

	for _, tx := range transactions {
		if tx.Date == nil || !window.Contains(*tx.Date) {
			outside++
			continue
		}
		if tx.Source == domain.SourceBank && documentBackedTypes[normalize(tx.Type)] {
			duplicated++
			continue
		}

		class := c.Classify(tx)
		amount := tx.Amount.Abs()
		switch class.Category {
		case domain.FlowOperatingInflow, domain.FlowOperatingOutflow:
			add(&summary.Operating, amount, class.Inflow)
		case domain.FlowInvesting:
			add(&summary.Investing, amount, class.Inflow)
		case domain.FlowFinancingInflow, domain.FlowFinancingOutflow:
			add(&summary.Financing, amount, class.Inflow)
		}

		if class.Inflow {
			summary.TotalInflow = summary.TotalInflow.Add(amount)
		} else {
			summary.TotalOutflow = summary.TotalOutflow.Add(amount)
		}

		summary.Transactions++
		if !class.Matched {
			summary.Unmatched++
		}
	}

	summary.NetChange = summary.Operating.Net.Add(summary.Investing.Net).Add(summary.Financing.Net)

	logrus.WithFields(logrus.Fields{
		"transactions": summary.Transactions,
		"unmatched":    summary.Unmatched,
		"outside":      outside,
		"duplicated":   duplicated,
	}).Debug("cashflow: transactions classified")

	return summary
}

// SummarizeBank agrupa as movimentações bancárias por conta.
func SummarizeBank(transactions []domain.Transaction) []domain.BankAccountActivity {
	byAccount := map[string]*domain.BankAccountActivity{}
	for _, tx := range transactions {
		if tx.Source != domain.SourceBank {
			continue
		}

		key := tx.AccountID
		if key == "" {
			key = tx.AccountName
		}
		activity, ok := byAccount[key]
		if !ok {
			activity = &domain.BankAccountActivity{AccountID: tx.AccountID, AccountName: tx.AccountName}
			byAccount[key] = activity
		}

		activity.Count++
		if tx.IsInflow() {
			activity.Deposits = activity.Deposits.Add(tx.Amount)
		} else {
			activity.Withdrawals = activity.Withdrawals.Add(tx.Amount.Abs())
		}
		activity.Net = activity.Deposits.Sub(activity.Withdrawals)
	}

	out := make([]domain.BankAccountActivity, 0, len(byAccount))
	for _, activity := range byAccount {
		out = append(out, *activity)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AccountName != out[j].AccountName {
			return out[i].AccountName < out[j].AccountName
		}
		return out[i].AccountID < out[j].AccountID
	})

	return out
}
