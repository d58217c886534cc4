package aging

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// TopLimit é quantos clientes ou fornecedores entram nos rankings.
const TopLimit = 10

// status que não contam como faturamento ou gasto do período
var nonBillableStatus = map[string]bool{
	"void":  true,
	"draft": true,
}

func inPeriod(window domain.QueryWindow, date *time.Time) bool {
	return date != nil && window.Contains(*date)
}

// TopOverdue devolve os documentos vencidos com mais dias de atraso, desempatando pelo saldo.
func TopOverdue(report domain.AgingReport, limit int) []domain.AgingRecord {
	overdue := []domain.AgingRecord{}
	for _, rec := range report.Records {
		if rec.Overdue {
			overdue = append(overdue, rec)
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		a, c := overdue[i], overdue[j]
		if a.DaysOverdue != c.DaysOverdue {
			return a.DaysOverdue > c.DaysOverdue
		}
		return a.Outstanding.GreaterThan(c.Outstanding)
	})

	if limit > 0 && len(overdue) > limit {
		overdue = overdue[:limit]
	}
	return overdue
}

// billed soma o total convertido dos documentos datados dentro da janela.
func (b *Bucketizer) billed(window domain.QueryWindow, documents []domain.Document, each func(doc domain.Document, amount decimal.Decimal)) {
	for _, doc := range documents {
		if nonBillableStatus[strings.ToLower(doc.Status)] || !inPeriod(window, doc.Date) {
			continue
		}
		currency := doc.CurrencyCode
		if currency == "" {
			currency = b.converter.Base()
		}
		amount, _ := b.converter.ToBase(doc.Total, strings.ToUpper(currency))
		each(doc, amount)
	}
}

// VendorSpend agrupa por fornecedor as contas e despesas do período e devolve os maiores.
func (b *Bucketizer) VendorSpend(window domain.QueryWindow, bills []domain.Document, expenses []domain.Transaction, limit int) []domain.EntityAmount {
	byVendor := map[string]*domain.EntityAmount{}
	add := func(name string, amount decimal.Decimal) {
		entry, ok := byVendor[name]
		if !ok {
			entry = &domain.EntityAmount{Entity: name}
			byVendor[name] = entry
		}
		entry.Amount = entry.Amount.Add(amount)
		entry.Count++
	}

	b.billed(window, bills, func(doc domain.Document, amount decimal.Decimal) {
		name := strings.TrimSpace(doc.Entity)
		if name == "" {
			name = "Unknown Vendor"
		}
		add(name, amount)
	})
	for _, tx := range expenses {
		if tx.Source != domain.SourceExpense || (tx.Date != nil && !window.Contains(*tx.Date)) {
			continue
		}
		name := tx.Counterparty
		if name == "" {
			name = "Expenses"
		}
		add(name, tx.Amount.Abs())
	}

	spend := make([]domain.EntityAmount, 0, len(byVendor))
	for _, entry := range byVendor {
		spend = append(spend, *entry)
	}
	sort.Slice(spend, func(i, j int) bool {
		if !spend[i].Amount.Equal(spend[j].Amount) {
			return spend[i].Amount.GreaterThan(spend[j].Amount)
		}
		return spend[i].Entity < spend[j].Entity
	})

	if limit > 0 && len(spend) > limit {
		spend = spend[:limit]
	}
	return spend
}

// CustomerInsights resume faturamento do período e inadimplência dos clientes.
func (b *Bucketizer) CustomerInsights(window domain.QueryWindow, invoices []domain.Document, receivables domain.AgingReport, contacts domain.ContactsSummary) domain.CustomerInsights {
	insights := domain.CustomerInsights{
		TotalCustomers:  contacts.Customers,
		ActiveCustomers: contacts.ActiveCustomers,
		Outstanding:     receivables.Outstanding,
		Overdue:         receivables.Overdue,
		TopOverdue:      TopOverdue(receivables, TopLimit),
	}

	b.billed(window, invoices, func(_ domain.Document, amount decimal.Decimal) {
		insights.RevenuePeriod = insights.RevenuePeriod.Add(amount)
		insights.InvoiceCount++
	})
	if insights.InvoiceCount > 0 {
		insights.AverageInvoice = insights.RevenuePeriod.Div(decimal.NewFromInt(int64(insights.InvoiceCount)))
	}

	overdueCustomers := map[string]bool{}
	for _, rec := range receivables.Records {
		if rec.Overdue {
			overdueCustomers[rec.Entity] = true
		}
	}
	insights.OverdueCustomers = len(overdueCustomers)

	return insights
}

// VendorInsights resume gasto do período e contas a pagar dos fornecedores.
func (b *Bucketizer) VendorInsights(window domain.QueryWindow, bills []domain.Document, expenses []domain.Transaction, payables domain.AgingReport, contacts domain.ContactsSummary) domain.VendorInsights {
	insights := domain.VendorInsights{
		TotalVendors:  contacts.Vendors,
		ActiveVendors: contacts.ActiveVendors,
		Outstanding:   payables.Outstanding,
		Overdue:       payables.Overdue,
	}

	all := b.VendorSpend(window, bills, expenses, 0)
	for _, entry := range all {
		insights.SpendPeriod = insights.SpendPeriod.Add(entry.Amount)
	}
	insights.TopSpend = all
	if len(all) > TopLimit {
		insights.TopSpend = all[:TopLimit]
	}

	return insights
}
