package cashflow

import (
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// Classification é o resultado da classificação de uma transação.
type Classification struct {
	Category domain.FlowCategory
	Rule     string
	Inflow   bool
	Matched  bool
}

type Classifier struct {
	rules []Rule
}

func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify aplica as regras em ordem: primeiro pela origem e pelo tipo da transação,
// depois pela descrição. Sem regra casada, o sinal do valor decide entre entrada e
// saída operacional.
func (c *Classifier) Classify(tx domain.Transaction) Classification {
	kind := normalize(tx.Type)
	for _, rule := range c.rules {
		if rule.matchesSource(tx.Source) || rule.matchesText(kind) {
			return classification(rule, tx)
		}
	}

	description := normalize(tx.Description)
	for _, rule := range c.rules {
		if rule.matchesText(description) {
			return classification(rule, tx)
		}
	}

	if tx.IsInflow() {
		return Classification{Category: domain.FlowOperatingInflow, Inflow: true}
	}
	return Classification{Category: domain.FlowOperatingOutflow}
}

func classification(rule Rule, tx domain.Transaction) Classification {
	result := Classification{Category: rule.Category, Rule: rule.Name, Matched: true}
	switch rule.Category {
	case domain.FlowOperatingInflow, domain.FlowFinancingInflow:
		result.Inflow = true
	case domain.FlowInvesting:
		result.Inflow = tx.IsInflow()
	}
	return result
}
