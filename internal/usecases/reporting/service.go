package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/aging"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/cashflow"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/converting"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/extracting"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/liquidity"
	"github.com/vfg2006/finance-dashboard-api/pkg/log"
)

var matchOperatingActivities = extracting.Contains("operating activities")

//go:generate mockgen -source=service.go -destination=mocks/reporting_service.go -package=mocks

type ReportingService interface {
	ProfitAndLoss(ctx context.Context, window domain.QueryWindow, basis domain.Basis) (*domain.ProfitAndLoss, error)
	Balance(ctx context.Context, asOf time.Time) (*domain.BalanceComponents, error)
	ReceivablesAging(ctx context.Context, window *domain.QueryWindow) (*domain.AgingReport, error)
	PayablesAging(ctx context.Context, window *domain.QueryWindow) (*domain.AgingReport, error)
	CashFlow(ctx context.Context, window domain.QueryWindow) (*domain.CashFlowSummary, error)
	Liquidity(ctx context.Context, window domain.QueryWindow) (*domain.LiquiditySnapshot, error)
	CashAvailable(ctx context.Context, window domain.QueryWindow, opts CashOptions) (*domain.CashAvailability, error)
	MonthlyProfit(ctx context.Context, window domain.QueryWindow) ([]domain.MonthlyProfit, error)
	Forecast(ctx context.Context, horizonDays int) (*domain.Forecast, error)
	Dashboard(ctx context.Context, window domain.QueryWindow, opts DashboardOptions) (*Dashboard, error)
}

// CashOptions sobrescreve reserva mínima e política configuradas. Valores zero usam a configuração.
type CashOptions struct {
	Reserve *decimal.Decimal
	Policy  liquidity.Policy
}

type DashboardOptions struct {
	CashOptions
	HorizonDays int
}

type Service struct {
	ledger     LedgerIntegrator
	converter  *converting.Converter
	balances   *extracting.BalanceExtractor
	bucketizer *aging.Bucketizer
	classifier *cashflow.Classifier
	reserve    decimal.Decimal
	policy     liquidity.Policy
	horizon    int
	now        func() time.Time
}

func NewReportingService(cfg *config.Config, ledger LedgerIntegrator, converter *converting.Converter, classifier *cashflow.Classifier, now func() time.Time) (ReportingService, error) {
	reserve, err := decimal.NewFromString(cfg.Engine.MinimumReserve)
	if err != nil {
		return nil, errors.Wrap(err, "reserva mínima inválida")
	}

	policy, err := liquidity.ParsePolicy(cfg.Engine.CashAvailablePolicy)
	if err != nil {
		return nil, err
	}

	if now == nil {
		now = time.Now
	}

	return &Service{
		ledger:     ledger,
		converter:  converter,
		balances:   extracting.NewBalanceExtractor(converter),
		bucketizer: aging.NewBucketizer(converter),
		classifier: classifier,
		reserve:    reserve,
		policy:     policy,
		horizon:    cfg.Engine.ForecastHorizonDays,
		now:        now,
	}, nil
}

func (s *Service) ProfitAndLoss(ctx context.Context, window domain.QueryWindow, basis domain.Basis) (*domain.ProfitAndLoss, error) {
	pl, err := s.profitAndLoss(ctx, nil, window, basis)
	if err != nil {
		return nil, err
	}

	rounded := pl.Rounded()
	return &rounded, nil
}

func (s *Service) Balance(ctx context.Context, asOf time.Time) (*domain.BalanceComponents, error) {
	balance, err := s.balance(ctx, nil, asOf)
	if err != nil {
		return nil, err
	}

	rounded := balance.Rounded()
	return &rounded, nil
}

func (s *Service) ReceivablesAging(ctx context.Context, window *domain.QueryWindow) (*domain.AgingReport, error) {
	documents, err := s.ledger.ListReceivables(ctx, window)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar faturas")
	}

	report := s.bucketizer.Build(domain.AgingReceivables, s.now(), documents, aging.Options{Window: window}).Rounded()
	return &report, nil
}

func (s *Service) PayablesAging(ctx context.Context, window *domain.QueryWindow) (*domain.AgingReport, error) {
	documents, err := s.ledger.ListPayables(ctx, window)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar contas a pagar")
	}

	report := s.bucketizer.Build(domain.AgingPayables, s.now(), documents, aging.Options{Window: window}).Rounded()
	return &report, nil
}

func (s *Service) CashFlow(ctx context.Context, window domain.QueryWindow) (*domain.CashFlowSummary, error) {
	summary, _ := s.cashFlow(ctx, &warnings{}, window)

	rounded := summary.Rounded()
	return &rounded, nil
}

func (s *Service) Liquidity(ctx context.Context, window domain.QueryWindow) (*domain.LiquiditySnapshot, error) {
	w := &warnings{}
	summary, _ := s.cashFlow(ctx, w, window)

	cash, err := s.cashOnHand(ctx, w, window.To, nil)
	if err != nil {
		return nil, err
	}

	snapshot := liquidity.Snapshot(summary, cash).Rounded()
	return &snapshot, nil
}

func (s *Service) CashAvailable(ctx context.Context, window domain.QueryWindow, opts CashOptions) (*domain.CashAvailability, error) {
	cashPL, err := s.profitAndLoss(ctx, nil, window, domain.BasisCash)
	if err != nil {
		return nil, err
	}

	balance, err := s.balance(ctx, nil, window.To)
	if err != nil {
		return nil, err
	}

	availability, err := s.cashAvailability(cashPL, balance, opts)
	if err != nil {
		return nil, err
	}

	rounded := availability.Rounded()
	return &rounded, nil
}

func (s *Service) MonthlyProfit(ctx context.Context, window domain.QueryWindow) ([]domain.MonthlyProfit, error) {
	monthly, err := s.monthly(ctx, &warnings{}, window)
	if err != nil {
		return nil, err
	}
	return roundMonthly(monthly), nil
}

func (s *Service) Forecast(ctx context.Context, horizonDays int) (*domain.Forecast, error) {
	if horizonDays == 0 {
		horizonDays = s.horizon
	}

	today := s.now()
	documents, err := s.ledger.ListPayables(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar contas a pagar")
	}
	payables := s.bucketizer.Build(domain.AgingPayables, today, documents, aging.Options{})

	cash, err := s.cashOnHand(ctx, &warnings{}, today, nil)
	if err != nil {
		return nil, err
	}

	forecast, err := forecasting.Project(cash, payables, today, horizonDays)
	if err != nil {
		return nil, err
	}

	rounded := forecast.Rounded()
	return &rounded, nil
}

// Dashboard compõe todas as figuras da janela. Falha em sub-consulta obrigatória interrompe
// a composição; as opcionais degradam e viram avisos.
func (s *Service) Dashboard(ctx context.Context, window domain.QueryWindow, opts DashboardOptions) (*Dashboard, error) {
	if opts.HorizonDays == 0 {
		opts.HorizonDays = s.horizon
	}

	w := &warnings{}
	today := s.now()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"from": window.FromString(),
		"to":   window.ToString(),
	})
	logger.Info("reporting: building dashboard")

	accrual, err := s.profitAndLoss(ctx, w, window, domain.BasisAccrual)
	if err != nil {
		return nil, err
	}

	cashPL, err := s.profitAndLoss(ctx, w, window, domain.BasisCash)
	if err != nil {
		return nil, err
	}

	balance, err := s.balance(ctx, w, window.To)
	if err != nil {
		return nil, err
	}

	invoices, _ := fetch(ctx, w, SubReceivables, func(bool) ([]domain.Document, error) {
		return s.ledger.ListReceivables(ctx, nil)
	})
	bills, _ := fetch(ctx, w, SubPayables, func(bool) ([]domain.Document, error) {
		return s.ledger.ListPayables(ctx, nil)
	})
	receivables := s.bucketizer.Build(domain.AgingReceivables, today, invoices.Value, aging.Options{})
	payables := s.bucketizer.Build(domain.AgingPayables, today, bills.Value, aging.Options{})

	contacts, _ := fetch(ctx, w, SubContacts, func(bool) ([]domain.Contact, error) {
		return s.ledger.ListContacts(ctx)
	})
	contactsSummary := aging.SummarizeContacts(contacts.Value)

	summary, transactions := s.cashFlow(ctx, w, window)

	cash, err := s.cashOnHand(ctx, w, window.To, &balance)
	if err != nil {
		return nil, err
	}

	availability, err := s.cashAvailability(cashPL, balance, opts.CashOptions)
	if err != nil {
		return nil, err
	}

	forecast, err := forecasting.Project(cash, payables, today, opts.HorizonDays)
	if err != nil {
		return nil, err
	}

	monthly, err := s.monthly(ctx, w, window)
	if err != nil {
		return nil, err
	}

	dashboard := Dashboard{
		Window:            window,
		GeneratedAt:       today,
		BaseCurrency:      s.converter.Base(),
		ProfitAndLoss:     accrual,
		CashProfitAndLoss: cashPL,
		Balance:           balance,
		Receivables:       receivables,
		Payables:          payables,
		CashFlow:          summary,
		BankActivity:      cashflow.SummarizeBank(transactions),
		Liquidity:         liquidity.Snapshot(summary, cash),
		CashAvailability:  availability,
		Forecast:          forecast,
		Monthly:           monthly,
		Contacts:          contactsSummary,
		Customers:         s.bucketizer.CustomerInsights(window, invoices.Value, receivables, contactsSummary),
		Vendors:           s.bucketizer.VendorInsights(window, bills.Value, transactions, payables, contactsSummary),
		Warnings:          w.items,
	}

	logger.WithField("warnings", len(w.items)).Info("reporting: dashboard built")

	rounded := dashboard.Rounded()
	return &rounded, nil
}

func (s *Service) profitAndLoss(ctx context.Context, w *warnings, window domain.QueryWindow, basis domain.Basis) (domain.ProfitAndLoss, error) {
	sections, err := fetch(ctx, w, SubProfitAndLoss, func(required bool) ([]domain.ReportNode, error) {
		return s.ledger.GetProfitAndLoss(ctx, window, basis, required)
	})
	if err != nil {
		return domain.ProfitAndLoss{}, err
	}

	metrics, breakdown, ambiguities := extracting.ExtractProfitAndLoss(sections.Value)

	return domain.ProfitAndLoss{
		Window:           window,
		Basis:            basis,
		Metrics:          metrics,
		ExpenseBreakdown: breakdown,
		Ambiguities:      ambiguities,
	}, nil
}

func (s *Service) balance(ctx context.Context, w *warnings, asOf time.Time) (domain.BalanceComponents, error) {
	sections, err := fetch(ctx, w, SubBalanceSheet, func(required bool) ([]domain.ReportNode, error) {
		return s.ledger.GetBalanceSheet(ctx, asOf, required)
	})
	if err != nil {
		return domain.BalanceComponents{}, err
	}

	return s.balances.Extract(asOf, sections.Value), nil
}

// transactions junta movimentações bancárias, recebimentos, pagamentos e despesas.
// Cada listagem é opcional.
func (s *Service) transactions(ctx context.Context, w *warnings, window domain.QueryWindow) []domain.Transaction {
	listings := []func(context.Context, domain.QueryWindow) ([]domain.Transaction, error){
		s.ledger.ListBankTransactions,
		s.ledger.ListCustomerPayments,
		s.ledger.ListVendorPayments,
		s.ledger.ListExpenses,
	}

	var all []domain.Transaction
	for _, list := range listings {
		result, _ := fetch(ctx, w, SubTransactions, func(bool) ([]domain.Transaction, error) {
			return list(ctx, window)
		})
		all = append(all, result.Value...)
	}
	return all
}

func (s *Service) cashFlow(ctx context.Context, w *warnings, window domain.QueryWindow) (domain.CashFlowSummary, []domain.Transaction) {
	transactions := s.transactions(ctx, w, window)
	summary := s.classifier.Summarize(window, transactions)

	statement, _ := fetch(ctx, w, SubCashFlowStatement, func(required bool) ([]domain.ReportNode, error) {
		return s.ledger.GetCashFlowStatement(ctx, window, required)
	})
	for _, section := range statement.Value {
		if matchOperatingActivities(section.NormalizedName()) {
			operating := section.Total
			summary.StatementOperating = &operating
			break
		}
	}

	return summary, transactions
}

// cashOnHand soma os saldos das contas bancárias convertidos para a moeda base. Sem contas
// disponíveis, usa o total de bancos do balanço; quando balance é nil o balanço é consultado.
func (s *Service) cashOnHand(ctx context.Context, w *warnings, asOf time.Time, balance *domain.BalanceComponents) (decimal.Decimal, error) {
	accounts, _ := fetch(ctx, w, SubBankAccounts, func(bool) ([]domain.AccountBalance, error) {
		return s.ledger.ListBankAccounts(ctx)
	})

	total := decimal.Zero
	for _, acc := range accounts.Value {
		amount, ok := s.converter.ToBase(acc.Amount, acc.Currency)
		if !ok {
			log.ForContext(ctx).
				WithField("account", acc.Name).
				WithField("currency", acc.Currency).
				Warn("reporting: bank account currency without configured rate")
		}
		total = total.Add(amount)
	}
	if len(accounts.Value) > 0 {
		return total, nil
	}

	if balance == nil {
		fetched, err := s.balance(ctx, w, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		balance = &fetched
	}
	return balance.BankTotal, nil
}

func (s *Service) cashAvailability(cashPL domain.ProfitAndLoss, balance domain.BalanceComponents, opts CashOptions) (domain.CashAvailability, error) {
	reserve := s.reserve
	if opts.Reserve != nil {
		reserve = *opts.Reserve
	}
	policy := s.policy
	if opts.Policy != "" {
		policy = opts.Policy
	}

	return liquidity.Calculate(policy, liquidity.Inputs{
		CashProfit:         cashPL.Metrics.NetProfit.Value,
		AccountsReceivable: balance.AccountsReceivable,
		PrepaidExpenses:    balance.PrepaidExpenses,
		AccountsPayable:    balance.AccountsPayable,
		BankTotal:          balance.BankTotal,
		MinimumReserve:     reserve,
	})
}

// monthly calcula o lucro líquido de cada mês civil da janela nos dois regimes.
// Cada consulta mensal é opcional; um mês que falha fica zerado e marcado como indisponível.
func (s *Service) monthly(ctx context.Context, w *warnings, window domain.QueryWindow) ([]domain.MonthlyProfit, error) {
	months := window.Months()
	series := make([]domain.MonthlyProfit, 0, len(months))

	for _, month := range months {
		entry := domain.MonthlyProfit{Month: month.From.Format("2006-01")}

		for _, basis := range []domain.Basis{domain.BasisCash, domain.BasisAccrual} {
			result, _ := fetch(ctx, w, SubMonthly, func(required bool) ([]domain.ReportNode, error) {
				return s.ledger.GetProfitAndLoss(ctx, month, basis, required)
			})
			if result.Degraded {
				entry.Unavailable = true
				continue
			}

			metrics, _, _ := extracting.ExtractProfitAndLoss(result.Value)
			if basis == domain.BasisCash {
				entry.CashNet = metrics.NetProfit.Value
				entry.CashSource = metrics.NetProfit.Provenance
			} else {
				entry.AccrualNet = metrics.NetProfit.Value
			}
		}

		series = append(series, entry)
	}

	return series, nil
}
