package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportNode é um nó da hierarquia de contas devolvida por um relatório contábil.
// A árvore é montada uma vez na decodificação e não é alterada depois.
type ReportNode struct {
	Name         string          `json:"name"`
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currency_code,omitempty"`
	Children     []ReportNode    `json:"children,omitempty"`
}

// NormalizedName devolve o nome em minúsculas e sem espaços nas pontas.
func (n ReportNode) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(n.Name))
}

// Provenance indica de onde veio o valor de uma métrica.
type Provenance string

const (
	ProvenanceReported        Provenance = "reported"
	ProvenanceDerived         Provenance = "derived"
	ProvenanceDerivedFromZero Provenance = "derived_from_zero"
	ProvenanceAbsent          Provenance = "absent"
)

// Figure é um valor monetário acompanhado da sua proveniência.
type Figure struct {
	Value      decimal.Decimal `json:"value"`
	Provenance Provenance      `json:"provenance"`
}

func Reported(v decimal.Decimal) Figure { return Figure{Value: v, Provenance: ProvenanceReported} }

func (f Figure) Rounded() Figure {
	f.Value = f.Value.Round(1)
	return f
}

// ComputationAmbiguity registra uma condição não fatal: a política canônica resolveu
// o valor de forma determinística, mas existiam candidatos concorrentes.
type ComputationAmbiguity struct {
	Figure     string          `json:"figure"`
	Reason     string          `json:"reason"`
	Candidates []string        `json:"candidates,omitempty"`
	Resolved   decimal.Decimal `json:"resolved"`
}

func (a ComputationAmbiguity) Error() string {
	return fmt.Sprintf("ambiguidade em %s: %s (candidatos: %s)", a.Figure, a.Reason, strings.Join(a.Candidates, ", "))
}
