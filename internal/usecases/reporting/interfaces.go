package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/ledger_integrator.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// LedgerIntegrator define a interface para obter relatórios e listagens da API contábil
type LedgerIntegrator interface {
	// GetProfitAndLoss obtém as seções do relatório de lucros e perdas no regime informado
	GetProfitAndLoss(ctx context.Context, window domain.QueryWindow, basis domain.Basis, required bool) ([]domain.ReportNode, error)
	// GetBalanceSheet obtém as seções do balanço patrimonial na data informada
	GetBalanceSheet(ctx context.Context, asOf time.Time, required bool) ([]domain.ReportNode, error)
	// GetCashFlowStatement obtém as seções da demonstração de fluxo de caixa
	GetCashFlowStatement(ctx context.Context, window domain.QueryWindow, required bool) ([]domain.ReportNode, error)

	ListReceivables(ctx context.Context, window *domain.QueryWindow) ([]domain.Document, error)
	ListPayables(ctx context.Context, window *domain.QueryWindow) ([]domain.Document, error)
	ListBankAccounts(ctx context.Context) ([]domain.AccountBalance, error)
	ListBankTransactions(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error)
	ListCustomerPayments(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error)
	ListVendorPayments(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error)
	ListExpenses(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}
