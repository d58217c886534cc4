package zoho

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	zohodomain "github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/domain"
	"github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/zohoclient"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

// ZohoIntegrator converte as respostas cruas da API contábil em tipos de domínio.
type ZohoIntegrator struct {
	cfg    *config.Config
	Client zohoclient.Client
}

func New(cfg *config.Config, client zohoclient.Client) *ZohoIntegrator {
	return &ZohoIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func windowParams(window *domain.QueryWindow) url.Values {
	params := url.Values{}
	if window != nil {
		params.Set("date_start", window.FromString())
		params.Set("date_end", window.ToString())
	}
	return params
}

func (s *ZohoIntegrator) GetProfitAndLoss(ctx context.Context, window domain.QueryWindow, basis domain.Basis, required bool) ([]domain.ReportNode, error) {
	sections, err := s.Client.GetProfitAndLoss(ctx, window.FromString(), window.ToString(), basis == domain.BasisCash, required)
	if err != nil {
		return nil, err
	}

	return FactoryReportNodes(sections), nil
}

func (s *ZohoIntegrator) GetBalanceSheet(ctx context.Context, asOf time.Time, required bool) ([]domain.ReportNode, error) {
	sections, err := s.Client.GetBalanceSheet(ctx, asOf.Format(time.DateOnly), required)
	if err != nil {
		return nil, err
	}

	return FactoryReportNodes(sections), nil
}

func (s *ZohoIntegrator) GetCashFlowStatement(ctx context.Context, window domain.QueryWindow, required bool) ([]domain.ReportNode, error) {
	sections, err := s.Client.GetCashFlow(ctx, window.FromString(), window.ToString(), required)
	if err != nil {
		return nil, err
	}

	nodes := make([]domain.ReportNode, 0, len(sections))
	for _, section := range sections {
		name := section.SectionName
		if name == "" {
			name = section.Name
		}
		nodes = append(nodes, domain.ReportNode{
			Name:     name,
			Total:    section.Total.Decimal,
			Children: FactoryReportNodes(section.AccountTransactions),
		})
	}

	return nodes, nil
}

func (s *ZohoIntegrator) ListReceivables(ctx context.Context, window *domain.QueryWindow) ([]domain.Document, error) {
	invoices, err := s.Client.ListInvoices(ctx, windowParams(window))
	if err != nil {
		return nil, err
	}

	documents := make([]domain.Document, 0, len(invoices))
	for _, inv := range invoices {
		documents = append(documents, domain.Document{
			ID:           inv.InvoiceID,
			Number:       inv.InvoiceNumber,
			Entity:       inv.CustomerName,
			Status:       inv.Status,
			Date:         utils.ParseOptionalDate(inv.Date),
			DueDate:      utils.ParseOptionalDate(inv.DueDate),
			CurrencyCode: inv.CurrencyCode,
			Total:        inv.Total.Decimal,
			AmountPaid:   zohodomain.Nullable(inv.Paid()),
			Balance:      zohodomain.Nullable(inv.Balance),
		})
	}

	logrus.WithField("count", len(documents)).Debug("zoho: receivables listed")

	return documents, nil
}

func (s *ZohoIntegrator) ListPayables(ctx context.Context, window *domain.QueryWindow) ([]domain.Document, error) {
	bills, err := s.Client.ListBills(ctx, windowParams(window))
	if err != nil {
		return nil, err
	}

	documents := make([]domain.Document, 0, len(bills))
	for _, bill := range bills {
		documents = append(documents, domain.Document{
			ID:           bill.BillID,
			Number:       bill.BillNumber,
			Entity:       bill.VendorName,
			Status:       bill.Status,
			Date:         utils.ParseOptionalDate(bill.Date),
			DueDate:      utils.ParseOptionalDate(bill.DueDate),
			CurrencyCode: bill.CurrencyCode,
			Total:        bill.Total.Decimal,
			AmountPaid:   zohodomain.Nullable(bill.Paid()),
			Balance:      zohodomain.Nullable(bill.Balance),
		})
	}

	logrus.WithField("count", len(documents)).Debug("zoho: payables listed")

	return documents, nil
}

func (s *ZohoIntegrator) ListBankAccounts(ctx context.Context) ([]domain.AccountBalance, error) {
	accounts, err := s.Client.ListBankAccounts(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		balances = append(balances, domain.AccountBalance{
			Name:           acc.AccountName,
			Amount:         acc.Balance.Decimal,
			OriginalAmount: acc.Balance.Decimal,
			Currency:       acc.CurrencyCode,
		})
	}

	return balances, nil
}

// ListBankTransactions devolve as movimentações com sinal: débito na conta bancária
// é entrada de caixa e crédito é saída.
func (s *ZohoIntegrator) ListBankTransactions(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error) {
	items, err := s.Client.ListBankTransactions(ctx, windowParams(&window))
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		amount := item.Amount.Abs()
		if strings.EqualFold(item.DebitOrCredit, "credit") {
			amount = amount.Neg()
		}

		description := item.Description
		if description == "" {
			description = item.Payee
		}

		transactions = append(transactions, domain.Transaction{
			ID:          item.TransactionID,
			Source:      domain.SourceBank,
			Type:        item.TransactionType,
			Description: description,
			AccountID:   item.AccountID,
			AccountName: item.AccountName,
			Date:        utils.ParseOptionalDate(item.Date),
			Amount:      amount,
		})
	}

	return transactions, nil
}

func (s *ZohoIntegrator) ListCustomerPayments(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error) {
	items, err := s.Client.ListCustomerPayments(ctx, windowParams(&window))
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, domain.Transaction{
			ID:           item.PaymentID,
			Source:       domain.SourceCustomerPayment,
			Type:         "customer_payment",
			Description:  strings.TrimSpace(item.CustomerName + " " + item.Description),
			Counterparty: item.CustomerName,
			Date:         utils.ParseOptionalDate(item.Date),
			Amount:       item.Amount.Abs(),
		})
	}

	return transactions, nil
}

func (s *ZohoIntegrator) ListVendorPayments(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error) {
	items, err := s.Client.ListVendorPayments(ctx, windowParams(&window))
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, domain.Transaction{
			ID:           item.PaymentID,
			Source:       domain.SourceVendorPayment,
			Type:         "vendor_payment",
			Description:  strings.TrimSpace(item.VendorName + " " + item.Description),
			Counterparty: item.VendorName,
			Date:         utils.ParseOptionalDate(item.Date),
			Amount:       item.Amount.Abs().Neg(),
		})
	}

	return transactions, nil
}

func (s *ZohoIntegrator) ListExpenses(ctx context.Context, window domain.QueryWindow) ([]domain.Transaction, error) {
	items, err := s.Client.ListExpenses(ctx, windowParams(&window))
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		amount := item.Total.Decimal
		if amount.IsZero() {
			amount = item.Amount.Decimal
		}

		transactions = append(transactions, domain.Transaction{
			ID:           item.ExpenseID,
			Source:       domain.SourceExpense,
			Type:         "expense",
			Description:  strings.TrimSpace(item.AccountName + " " + item.Description),
			Counterparty: expensePayee(item),
			AccountName:  item.AccountName,
			Date:         utils.ParseOptionalDate(item.Date),
			Amount:       amount.Abs().Neg(),
		})
	}

	return transactions, nil
}

// expensePayee usa fornecedor, favorecido ou conta, nessa ordem.
func expensePayee(item zohodomain.Expense) string {
	for _, name := range []string{item.VendorName, item.PayeeName, item.AccountName} {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return "Expenses"
}

func (s *ZohoIntegrator) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	items, err := s.Client.ListContacts(ctx, nil)
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(items))
	for _, item := range items {
		contacts = append(contacts, domain.Contact{
			ID:                    item.ContactID,
			Name:                  item.ContactName,
			Type:                  strings.ToLower(item.ContactType),
			Active:                strings.EqualFold(item.Status, "active"),
			OutstandingReceivable: item.OutstandingReceivableAmount.Decimal,
			OutstandingPayable:    item.OutstandingPayableAmount.Decimal,
		})
	}

	return contacts, nil
}

// FactoryReportNodes converte recursivamente os nós crus em ReportNode.
func FactoryReportNodes(raw []zohodomain.ReportNode) []domain.ReportNode {
	if len(raw) == 0 {
		return nil
	}

	nodes := make([]domain.ReportNode, 0, len(raw))
	for _, r := range raw {
		nodes = append(nodes, domain.ReportNode{
			Name:         r.Name,
			Total:        r.Total.Decimal,
			CurrencyCode: strings.ToUpper(r.CurrencyCode),
			Children:     FactoryReportNodes(r.AccountTransactions),
		})
	}

	return nodes
}
