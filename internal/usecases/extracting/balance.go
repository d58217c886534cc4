package extracting

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/converting"
)

var (
	matchAssets      = Exact("assets")
	matchLiabilities = Exact("liabilities & equities", "liabilities and equities", "liabilities & equity", "liabilities")
)

// BalanceExtractor extrai caixa, recebíveis, despesas antecipadas e contas a pagar do balanço.
type BalanceExtractor struct {
	converter *converting.Converter
}

func NewBalanceExtractor(converter *converting.Converter) *BalanceExtractor {
	return &BalanceExtractor{converter: converter}
}

// Policies devolve a política de agregação de cada componente.
func Policies() domain.BalancePolicies {
	return domain.BalancePolicies{
		BankTotal:          domain.AggregationSumAll,
		AccountsReceivable: domain.AggregationSumAll,
		PrepaidExpenses:    domain.AggregationUniqueNode,
		AccountsPayable:    domain.AggregationSumAll,
		CurrentAssets:      domain.AggregationUniqueNode,
		CurrentLiabilities: domain.AggregationUniqueNode,
	}
}

func (e *BalanceExtractor) Extract(asOf time.Time, sections []domain.ReportNode) domain.BalanceComponents {
	result := domain.BalanceComponents{AsOf: asOf, Policies: Policies()}

	var assets, liabilities []domain.ReportNode
	for _, section := range sections {
		name := section.NormalizedName()
		switch {
		case matchAssets(name):
			assets = append(assets, section)
		case matchLiabilities(name):
			liabilities = append(liabilities, section)
		}
	}

	if len(assets) == 0 && len(liabilities) == 0 && len(sections) > 0 {
		// payload sem as seções raiz: percorre tudo e registra a condição
		result.Ambiguities = append(result.Ambiguities, domain.ComputationAmbiguity{
			Figure: "balance_sheet",
			Reason: "seções Assets e Liabilities & Equities ausentes; percorrido o relatório inteiro",
		})
		assets, liabilities = sections, sections
	}

	receivable := &sumAccumulator{}
	prepaid := &uniqueAccumulator{figure: "prepaid_expenses"}
	payable := &sumAccumulator{}
	currentAssets := &uniqueAccumulator{figure: "current_assets"}
	currentLiabilities := &uniqueAccumulator{figure: "current_liabilities"}

	assetRules := []Rule{
		{Name: "current_assets", Match: Exact("current assets"), Accumulate: currentAssets.add},
		{Name: "prepaid_expenses", Match: Exact("prepaid expenses"), Accumulate: prepaid.add},
		{Name: "accounts_receivable", Match: Contains("accounts receivable", "debtors"), Aggregation: AggregateCountOnce, Accumulate: receivable.add},
		{Name: "bank_total", Match: Contains("bank", "cash"), Aggregation: AggregateCountOnce, Accumulate: func(node domain.ReportNode) {
			result.BankAccounts = append(result.BankAccounts, e.bankAccount(node, &result))
		}},
	}
	liabilityRules := []Rule{
		{Name: "current_liabilities", Match: Exact("current liabilities"), Accumulate: currentLiabilities.add},
		{Name: "accounts_payable", Match: Contains("accounts payable"), Aggregation: AggregateCountOnce, Accumulate: payable.add},
	}

	assetAmbiguities := Walk(assets, assetRules)
	liabilityAmbiguities := Walk(liabilities, liabilityRules)
	result.Ambiguities = append(result.Ambiguities, assetAmbiguities...)
	result.Ambiguities = append(result.Ambiguities, liabilityAmbiguities...)
	for _, unique := range []*uniqueAccumulator{prepaid, currentAssets, currentLiabilities} {
		if amb, ok := unique.ambiguity(); ok {
			result.Ambiguities = append(result.Ambiguities, amb)
		}
	}

	for _, acc := range result.BankAccounts {
		result.BankTotal = result.BankTotal.Add(acc.Amount)
	}
	result.AccountsReceivable = receivable.total
	result.PrepaidExpenses = prepaid.value()
	result.AccountsPayable = payable.total
	result.CurrentAssets = currentAssets.value()
	result.CurrentLiabilities = currentLiabilities.value().Abs()
	workingCapital(&result)

	logAmbiguities(result.Ambiguities)

	return result
}

// workingCapital deriva capital de giro e liquidez corrente dos componentes já extraídos.
func workingCapital(b *domain.BalanceComponents) {
	b.NetWorkingCapital = b.BankTotal.Add(b.AccountsReceivable).Add(b.PrepaidExpenses).Sub(b.AccountsPayable)
	b.WorkingCapital = b.CurrentAssets.Sub(b.CurrentLiabilities)
	if !b.CurrentLiabilities.IsZero() {
		b.CurrentRatio = decimal.NewNullDecimal(b.CurrentAssets.Div(b.CurrentLiabilities))
	}
}

func (e *BalanceExtractor) bankAccount(node domain.ReportNode, result *domain.BalanceComponents) domain.AccountBalance {
	currency := nodeCurrency(node, e.converter.Base())
	amount, ok := e.converter.ToBase(node.Total, currency)
	if !ok {
		result.Ambiguities = append(result.Ambiguities, domain.ComputationAmbiguity{
			Figure:     "bank_total",
			Reason:     "moeda sem taxa configurada; valor somado sem conversão",
			Candidates: []string{node.Name + " (" + currency + ")"},
			Resolved:   node.Total,
		})
	}

	return domain.AccountBalance{
		Name:           node.Name,
		Amount:         amount,
		OriginalAmount: node.Total,
		Currency:       currency,
	}
}

// nodeCurrency usa o código do nó; sem código, nomes com "USD" ou "$" são tratados como dólar.
func nodeCurrency(node domain.ReportNode, base string) string {
	if node.CurrencyCode != "" {
		return strings.ToUpper(node.CurrencyCode)
	}
	upper := strings.ToUpper(node.Name)
	if strings.Contains(upper, "USD") || strings.Contains(upper, "$") {
		return "USD"
	}
	return base
}
