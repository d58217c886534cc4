package extracting

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// ExtractProfitAndLoss produz a cascata de resultados e o detalhamento de despesas
// operacionais a partir das seções do relatório de lucros e perdas.
//
// Gross, Operating e Net Profit usam o valor reportado quando diferente de zero; zero
// ou ausência levam à derivação pelas demais linhas.
func ExtractProfitAndLoss(sections []domain.ReportNode) (domain.FinancialMetrics, []domain.ExpenseItem, []domain.ComputationAmbiguity) {
	var (
		sales        = &uniqueAccumulator{figure: "sales"}
		cogs         = &uniqueAccumulator{figure: "cogs"}
		gross        = &uniqueAccumulator{figure: "gross_profit"}
		opex         = &uniqueAccumulator{figure: "operating_expenses"}
		operating    = &uniqueAccumulator{figure: "operating_profit"}
		net          = &uniqueAccumulator{figure: "net_profit"}
		nonOpIncome  = &sumAccumulator{}
		nonOpExpense = &sumAccumulator{}
	)

	rules := []Rule{
		{Name: "non_operating_income", Match: Exact("non operating income"), Accumulate: nonOpIncome.add},
		{Name: "non_operating_expense", Match: Exact("non operating expense"), Accumulate: nonOpExpense.add},
		{Name: "sales", Match: Exact("operating income"), Accumulate: sales.add},
		{Name: "cogs", Match: Exact("cost of goods sold"), Accumulate: cogs.add},
		{Name: "gross_profit", Match: Exact("gross profit"), Accumulate: gross.add},
		{Name: "operating_expenses", Match: Exact("operating expense", "operating expenses"), Accumulate: opex.add},
		{Name: "operating_profit", Match: Exact("operating profit"), Accumulate: operating.add},
		{Name: "net_profit", Match: Exact("net profit/loss", "net profit", "net loss"), Accumulate: net.add},
	}

	ambiguities := Walk(sections, rules)
	for _, acc := range []*uniqueAccumulator{sales, cogs, gross, opex, operating, net} {
		if amb, ok := acc.ambiguity(); ok {
			ambiguities = append(ambiguities, amb)
		}
	}

	metrics := domain.FinancialMetrics{
		Sales:               direct(sales),
		COGS:                direct(cogs),
		OperatingExpenses:   direct(opex),
		NonOperatingIncome:  nonOpIncome.total,
		NonOperatingExpense: nonOpExpense.total,
	}
	metrics.GrossProfit = reportedOrDerived(gross, metrics.Sales.Value.Sub(metrics.COGS.Value))
	metrics.OperatingProfit = reportedOrDerived(operating, metrics.GrossProfit.Value.Sub(metrics.OperatingExpenses.Value))
	metrics.NetProfit = reportedOrDerived(net, metrics.OperatingProfit.Value.Add(metrics.NonOperatingIncome).Sub(metrics.NonOperatingExpense))

	var breakdown []domain.ExpenseItem
	if opex.found {
		breakdown = make([]domain.ExpenseItem, 0, len(opex.node.Children))
		for _, child := range opex.node.Children {
			breakdown = append(breakdown, domain.ExpenseItem{Name: child.Name, Amount: child.Total})
		}
	}

	logAmbiguities(ambiguities)

	return metrics, breakdown, ambiguities
}

func direct(acc *uniqueAccumulator) domain.Figure {
	if !acc.found {
		return domain.Figure{Value: decimal.Zero, Provenance: domain.ProvenanceAbsent}
	}
	return domain.Reported(acc.value())
}

// reportedOrDerived nunca substitui um valor reportado diferente de zero.
func reportedOrDerived(acc *uniqueAccumulator, derived decimal.Decimal) domain.Figure {
	switch {
	case !acc.found:
		return domain.Figure{Value: derived, Provenance: domain.ProvenanceDerived}
	case acc.value().IsZero():
		return domain.Figure{Value: derived, Provenance: domain.ProvenanceDerivedFromZero}
	default:
		return domain.Reported(acc.value())
	}
}
