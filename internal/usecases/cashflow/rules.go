package cashflow

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

//go:embed rules.yaml
var defaultRules []byte

var validCategories = map[domain.FlowCategory]bool{
	domain.FlowOperatingInflow:  true,
	domain.FlowOperatingOutflow: true,
	domain.FlowInvesting:        true,
	domain.FlowFinancingInflow:  true,
	domain.FlowFinancingOutflow: true,
}

// Rule é uma linha da tabela de classificação.
type Rule struct {
	Name      string                     `yaml:"name"`
	Category  domain.FlowCategory        `yaml:"category"`
	Sources   []domain.TransactionSource `yaml:"sources"`
	Keywords  []string                   `yaml:"keywords"`
	Direction string                     `yaml:"direction"`
}

// LoadRules lê e valida uma tabela de regras em YAML.
func LoadRules(data []byte) ([]Rule, error) {
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "erro ao ler regras de fluxo de caixa")
	}

	for i, rule := range rules {
		if !validCategories[rule.Category] {
			return nil, fmt.Errorf("regra %q: categoria inválida %q", rule.Name, rule.Category)
		}
		if len(rule.Sources) == 0 && len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("regra %q: sem origens nem palavras-chave", rule.Name)
		}
		for j, kw := range rule.Keywords {
			rules[i].Keywords[j] = normalize(kw)
		}
	}

	return rules, nil
}

// DefaultRules devolve a tabela embutida no binário.
func DefaultRules() []Rule {
	rules, err := LoadRules(defaultRules)
	if err != nil {
		panic(err)
	}
	return rules
}

// normalize deixa o texto minúsculo e troca separadores por espaço, de modo que
// "owner_contribution" e "Owner Contribution" casem a mesma palavra-chave.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}

func (r Rule) matchesSource(source domain.TransactionSource) bool {
	for _, s := range r.Sources {
		if s == source {
			return true
		}
	}
	return false
}

func (r Rule) matchesText(text string) bool {
	if text == "" {
		return false
	}
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
