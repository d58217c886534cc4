package converting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCurrency = errors.New("código de moeda desconhecido")
	ErrInvalidRate     = errors.New("taxa de câmbio inválida")
)

// Converter normaliza valores para a moeda base usando taxas fixas configuradas.
// Não há integração com cotação ao vivo.
type Converter struct {
	base  string
	rates map[string]decimal.Decimal
}

func NewConverter(base string, rates map[string]decimal.Decimal) (*Converter, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if money.GetCurrency(base) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, base)
	}

	normalized := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if money.GetCurrency(code) == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: %s=%s", ErrInvalidRate, code, rate)
		}
		normalized[code] = rate
	}

	return &Converter{base: base, rates: normalized}, nil
}

// ParseRates lê pares no formato CÓDIGO:TAXA, por exemplo "USD:3.6725".
func ParseRates(pairs []string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		code, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRate, pair)
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRate, pair)
		}

		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
}

func (c *Converter) Base() string {
	return c.base
}

// IsBase indica se o código está vazio ou é a moeda base.
func (c *Converter) IsBase(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code == "" || code == c.base
}

// ToBase converte o valor para a moeda base. Retorna false quando não há taxa para
// a moeda; nesse caso o valor original é devolvido sem conversão.
func (c *Converter) ToBase(amount decimal.Decimal, code string) (decimal.Decimal, bool) {
	if c.IsBase(code) {
		return amount, true
	}

	rate, ok := c.rates[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return amount, false
	}

	return amount.Mul(rate), true
}

// Format formata o valor na moeda base com as casas decimais da moeda.
func (c *Converter) Format(amount decimal.Decimal) string {
	cur := money.GetCurrency(c.base)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, c.base).Display()
}
