package domain

import "github.com/shopspring/decimal"

// EntityAmount é o total atribuído a um cliente ou fornecedor.
type EntityAmount struct {
	Entity string          `json:"entity"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type CustomerInsights struct {
	TotalCustomers   int             `json:"total_customers"`
	ActiveCustomers  int             `json:"active_customers"`
	RevenuePeriod    decimal.Decimal `json:"revenue_period"`
	InvoiceCount     int             `json:"invoice_count"`
	AverageInvoice   decimal.Decimal `json:"average_invoice"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	Overdue          decimal.Decimal `json:"overdue"`
	OverdueCustomers int             `json:"overdue_customers"`
	TopOverdue       []AgingRecord   `json:"top_overdue"`
}

func (c CustomerInsights) Rounded() CustomerInsights {
	out := c
	out.RevenuePeriod = c.RevenuePeriod.Round(1)
	out.AverageInvoice = c.AverageInvoice.Round(1)
	out.Outstanding = c.Outstanding.Round(1)
	out.Overdue = c.Overdue.Round(1)
	out.TopOverdue = make([]AgingRecord, len(c.TopOverdue))
	for i, rec := range c.TopOverdue {
		rec.Outstanding = rec.Outstanding.Round(1)
		rec.OriginalAmount = rec.OriginalAmount.Round(1)
		out.TopOverdue[i] = rec
	}
	return out
}

type VendorInsights struct {
	TotalVendors  int             `json:"total_vendors"`
	ActiveVendors int             `json:"active_vendors"`
	SpendPeriod   decimal.Decimal `json:"spend_period"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	Overdue       decimal.Decimal `json:"overdue"`
	TopSpend      []EntityAmount  `json:"top_spend"`
}

func (v VendorInsights) Rounded() VendorInsights {
	out := v
	out.SpendPeriod = v.SpendPeriod.Round(1)
	out.Outstanding = v.Outstanding.Round(1)
	out.Overdue = v.Overdue.Round(1)
	out.TopSpend = make([]EntityAmount, len(v.TopSpend))
	for i, e := range v.TopSpend {
		out.TopSpend[i] = EntityAmount{Entity: e.Entity, Amount: e.Amount.Round(1), Count: e.Count}
	}
	return out
}
