package aging

import (
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// SummarizeContacts conta clientes e fornecedores e soma os saldos em aberto informados no cadastro.
func SummarizeContacts(contacts []domain.Contact) domain.ContactsSummary {
	var summary domain.ContactsSummary
	for _, c := range contacts {
		switch c.Type {
		case "customer":
			summary.Customers++
			if c.Active {
				summary.ActiveCustomers++
			}
		case "vendor":
			summary.Vendors++
			if c.Active {
				summary.ActiveVendors++
			}
		}
		summary.OutstandingReceivable = summary.OutstandingReceivable.Add(c.OutstandingReceivable)
		summary.OutstandingPayable = summary.OutstandingPayable.Add(c.OutstandingPayable)
	}
	return summary
}
