package domain

import "github.com/shopspring/decimal"

// Contact é um cliente ou fornecedor cadastrado na API contábil.
type Contact struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Type                  string          `json:"type"`
	Active                bool            `json:"active"`
	OutstandingReceivable decimal.Decimal `json:"outstanding_receivable"`
	OutstandingPayable    decimal.Decimal `json:"outstanding_payable"`
}

type ContactsSummary struct {
	Customers             int             `json:"customers"`
	ActiveCustomers       int             `json:"active_customers"`
	Vendors               int             `json:"vendors"`
	ActiveVendors         int             `json:"active_vendors"`
	OutstandingReceivable decimal.Decimal `json:"outstanding_receivable"`
	OutstandingPayable    decimal.Decimal `json:"outstanding_payable"`
}
