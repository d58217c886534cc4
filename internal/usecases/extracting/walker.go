package extracting

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// Matcher decide se um nome normalizado (minúsculo, sem espaços nas pontas) pertence à regra.
type Matcher func(name string) bool

// Exact casa nomes idênticos a qualquer um dos informados.
func Exact(names ...string) Matcher {
	normalized := normalizeAll(names)
	return func(name string) bool {
		for _, n := range normalized {
			if name == n {
				return true
			}
		}
		return false
	}
}

// Contains casa nomes que contenham qualquer um dos trechos informados.
func Contains(fragments ...string) Matcher {
	normalized := normalizeAll(fragments)
	return func(name string) bool {
		for _, f := range normalized {
			if strings.Contains(name, f) {
				return true
			}
		}
		return false
	}
}

func normalizeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// Aggregation define quando o nó casado alimenta o acumulador.
type Aggregation int

const (
	// AggregateEach acumula todo nó casado, em pré-ordem.
	AggregateEach Aggregation = iota
	// AggregateCountOnce acumula o nó apenas se nenhum descendente casar a mesma regra,
	// de modo que cada folha entra uma única vez mesmo quando o contêiner também casa.
	AggregateCountOnce
)

// Rule associa um predicado de nome a um acumulador.
type Rule struct {
	Name        string
	Match       Matcher
	Aggregation Aggregation
	Accumulate  func(node domain.ReportNode)
}

// Walk percorre os nós em profundidade. Em cada nó aplica a primeira regra que casar e
// sempre desce para os filhos, mesmo que o nó tenha casado. Devolve as ambiguidades
// encontradas: contêineres cujo total difere da soma dos descendentes casados pela mesma regra.
func Walk(nodes []domain.ReportNode, rules []Rule) []domain.ComputationAmbiguity {
	w := walker{rules: rules}
	for _, node := range nodes {
		w.visit(node)
	}
	return w.ambiguities
}

type walker struct {
	rules       []Rule
	ambiguities []domain.ComputationAmbiguity
}

func (w *walker) firstMatch(name string) int {
	for i, rule := range w.rules {
		if rule.Match(name) {
			return i
		}
	}
	return -1
}

// visit devolve, por regra CountOnce, a soma dos totais crus efetivamente contados na subárvore.
func (w *walker) visit(node domain.ReportNode) map[int]decimal.Decimal {
	idx := w.firstMatch(node.NormalizedName())

	if idx >= 0 && w.rules[idx].Aggregation == AggregateEach {
		w.rules[idx].Accumulate(node)
	}

	counted := map[int]decimal.Decimal{}
	for _, child := range node.Children {
		for rule, sum := range w.visit(child) {
			counted[rule] = counted[rule].Add(sum)
		}
	}

	if idx < 0 || w.rules[idx].Aggregation != AggregateCountOnce {
		return counted
	}

	descendants, matchedBelow := counted[idx]
	if !matchedBelow {
		w.rules[idx].Accumulate(node)
		counted[idx] = node.Total
		return counted
	}

	if !node.Total.IsZero() && !node.Total.Equal(descendants) {
		w.ambiguities = append(w.ambiguities, domain.ComputationAmbiguity{
			Figure:     w.rules[idx].Name,
			Reason:     "total do contêiner difere da soma dos descendentes casados; contados apenas os descendentes",
			Candidates: []string{node.Name},
			Resolved:   descendants,
		})
	}

	return counted
}
