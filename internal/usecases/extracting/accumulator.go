package extracting

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// sumAccumulator soma todos os nós recebidos.
type sumAccumulator struct {
	total decimal.Decimal
	nodes []domain.ReportNode
}

func (a *sumAccumulator) add(node domain.ReportNode) {
	a.total = a.total.Add(node.Total)
	a.nodes = append(a.nodes, node)
}

// uniqueAccumulator guarda o primeiro nó recebido (em pré-ordem) e anota os demais
// como duplicatas, para que a escolha seja registrada como ambiguidade.
type uniqueAccumulator struct {
	figure     string
	node       domain.ReportNode
	found      bool
	duplicates []string
}

func (a *uniqueAccumulator) add(node domain.ReportNode) {
	if a.found {
		a.duplicates = append(a.duplicates, node.Name)
		return
	}
	a.node = node
	a.found = true
}

func (a *uniqueAccumulator) value() decimal.Decimal {
	if !a.found {
		return decimal.Zero
	}
	return a.node.Total
}

func (a *uniqueAccumulator) ambiguity() (domain.ComputationAmbiguity, bool) {
	if len(a.duplicates) == 0 {
		return domain.ComputationAmbiguity{}, false
	}
	return domain.ComputationAmbiguity{
		Figure:     a.figure,
		Reason:     "mais de um nó casou; mantido o primeiro na ordem de percurso",
		Candidates: append([]string{a.node.Name}, a.duplicates...),
		Resolved:   a.node.Total,
	}, true
}

func logAmbiguities(ambiguities []domain.ComputationAmbiguity) {
	for _, amb := range ambiguities {
		logrus.WithFields(logrus.Fields{
			"figure":     amb.Figure,
			"candidates": amb.Candidates,
			"resolved":   amb.Resolved.String(),
		}).Warn("extracting: " + amb.Reason)
	}
}
