package zohoclient

import (
	"context"
	"net/url"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	GetProfitAndLoss(ctx context.Context, fromDate, toDate string, cashBased, required bool) ([]zohodomain.ReportNode, error)
	GetBalanceSheet(ctx context.Context, toDate string, required bool) ([]zohodomain.ReportNode, error)
	GetCashFlow(ctx context.Context, fromDate, toDate string, required bool) ([]zohodomain.CashFlowSection, error)
	ListInvoices(ctx context.Context, params url.Values) ([]zohodomain.Invoice, error)
	ListBills(ctx context.Context, params url.Values) ([]zohodomain.Bill, error)
	ListCustomerPayments(ctx context.Context, params url.Values) ([]zohodomain.CustomerPayment, error)
	ListVendorPayments(ctx context.Context, params url.Values) ([]zohodomain.VendorPayment, error)
	ListExpenses(ctx context.Context, params url.Values) ([]zohodomain.Expense, error)
	ListBankAccounts(ctx context.Context) ([]zohodomain.BankAccount, error)
	ListBankTransactions(ctx context.Context, params url.Values) ([]zohodomain.BankTransaction, error)
	ListContacts(ctx context.Context, params url.Values) ([]zohodomain.Contact, error)
	Close()
}

type ZohoClient struct {
	Session    *Session
	Dispatcher *Dispatcher
	pageSize   int
	maxPages   int
}

func NewClient(cfg *config.Config, session *Session, dispatcher *Dispatcher) Client {
	return &ZohoClient{
		Session:    session,
		Dispatcher: dispatcher,
		pageSize:   cfg.Dispatcher.PageSize,
		maxPages:   cfg.Dispatcher.MaxPages,
	}
}

// Close encerra a sessão, descartando token e cache.
func (c *ZohoClient) Close() {
	c.Session.Close()
}
