package zohodomain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount decodifica valores monetários de forma tolerante: números, strings numéricas
// (com ou sem separador de milhar), vazio, null ou campo ausente. Qualquer valor não
// numérico vira zero em vez de erro.
type Amount struct {
	decimal.Decimal
}

func NewAmount(v string) Amount {
	var a Amount
	_ = a.UnmarshalJSON([]byte(v))
	return a
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Nullable devolve o valor como NullDecimal, inválido quando o ponteiro é nil.
func Nullable(a *Amount) decimal.NullDecimal {
	if a == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(a.Decimal)
}
