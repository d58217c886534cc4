package liquidity

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
)

// Policy nomeia a fórmula de caixa disponível.
type Policy string

const (
	// PolicyCanonical: lucro de caixa - contas a pagar - reserva; pode ser negativo.
	PolicyCanonical Policy = "canonical"
	// PolicyWithReceivables soma recebíveis e despesas antecipadas; limitado a zero.
	PolicyWithReceivables Policy = "with_receivables"
	// PolicyBankCeiling limita o resultado canônico ao saldo bancário menos a reserva; limitado a zero.
	PolicyBankCeiling Policy = "bank_ceiling"
)

var ErrUnknownPolicy = errors.New("política de caixa disponível desconhecida")

var formulas = map[Policy]func(Inputs) decimal.Decimal{
	PolicyCanonical:       canonical,
	PolicyWithReceivables: withReceivables,
	PolicyBankCeiling:     bankCeiling,
}

// Inputs reúne todos os componentes usados pelas fórmulas.
type Inputs struct {
	CashProfit         decimal.Decimal
	AccountsReceivable decimal.Decimal
	PrepaidExpenses    decimal.Decimal
	AccountsPayable    decimal.Decimal
	BankTotal          decimal.Decimal
	MinimumReserve     decimal.Decimal
}

func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return PolicyCanonical, nil
	}
	p := Policy(name)
	if _, ok := formulas[p]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
	}
	return p, nil
}

// Calculate aplica a política e devolve o resultado junto de todos os componentes.
func Calculate(policy Policy, in Inputs) (domain.CashAvailability, error) {
	formula, ok := formulas[policy]
	if !ok {
		return domain.CashAvailability{}, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}

	available := formula(in)

	return domain.CashAvailability{
		Policy:             string(policy),
		CashProfit:         in.CashProfit,
		AccountsReceivable: in.AccountsReceivable,
		PrepaidExpenses:    in.PrepaidExpenses,
		AccountsPayable:    in.AccountsPayable,
		BankTotal:          in.BankTotal,
		MinimumReserve:     in.MinimumReserve,
		CashAvailable:      available,
		Shortage:           available.IsNegative(),
	}, nil
}

func canonical(in Inputs) decimal.Decimal {
	return in.CashProfit.Sub(in.AccountsPayable).Sub(in.MinimumReserve)
}

func withReceivables(in Inputs) decimal.Decimal {
	v := in.CashProfit.Add(in.AccountsReceivable).Add(in.PrepaidExpenses).Sub(in.AccountsPayable).Sub(in.MinimumReserve)
	return decimal.Max(v, decimal.Zero)
}

func bankCeiling(in Inputs) decimal.Decimal {
	v := decimal.Min(canonical(in), in.BankTotal.Sub(in.MinimumReserve))
	return decimal.Max(v, decimal.Zero)
}
