package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregationPolicy identifica como um componente do balanço foi agregado.
type AggregationPolicy string

const (
	// soma todos os nós que casam, contando cada folha uma única vez
	AggregationSumAll AggregationPolicy = "sum_all"
	// valor do único nó com o nome exato
	AggregationUniqueNode AggregationPolicy = "unique_node"
)

// AccountBalance é uma conta bancária ou de caixa já convertida para a moeda base.
type AccountBalance struct {
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Currency       string          `json:"currency"`
}

type BalancePolicies struct {
	BankTotal          AggregationPolicy `json:"bank_total"`
	AccountsReceivable AggregationPolicy `json:"accounts_receivable"`
	PrepaidExpenses    AggregationPolicy `json:"prepaid_expenses"`
	AccountsPayable    AggregationPolicy `json:"accounts_payable"`
	CurrentAssets      AggregationPolicy `json:"current_assets"`
	CurrentLiabilities AggregationPolicy `json:"current_liabilities"`
}

// BalanceComponents são os componentes do balanço usados no cálculo de liquidez.
// NetWorkingCapital é caixa + recebíveis + antecipadas - contas a pagar; WorkingCapital é
// ativo circulante menos passivo circulante. CurrentRatio fica nulo quando o passivo circulante é zero.
type BalanceComponents struct {
	AsOf               time.Time              `json:"as_of"`
	BankTotal          decimal.Decimal        `json:"bank_total"`
	AccountsReceivable decimal.Decimal        `json:"accounts_receivable"`
	PrepaidExpenses    decimal.Decimal        `json:"prepaid_expenses"`
	AccountsPayable    decimal.Decimal        `json:"accounts_payable"`
	CurrentAssets      decimal.Decimal        `json:"current_assets"`
	CurrentLiabilities decimal.Decimal        `json:"current_liabilities"`
	NetWorkingCapital  decimal.Decimal        `json:"net_working_capital"`
	WorkingCapital     decimal.Decimal        `json:"working_capital"`
	CurrentRatio       decimal.NullDecimal    `json:"current_ratio"`
	BankAccounts       []AccountBalance       `json:"bank_accounts"`
	Policies           BalancePolicies        `json:"policies"`
	Ambiguities        []ComputationAmbiguity `json:"ambiguities,omitempty"`
}

func (b BalanceComponents) Rounded() BalanceComponents {
	out := b
	out.BankTotal = b.BankTotal.Round(1)
	out.AccountsReceivable = b.AccountsReceivable.Round(1)
	out.PrepaidExpenses = b.PrepaidExpenses.Round(1)
	out.AccountsPayable = b.AccountsPayable.Round(1)
	out.CurrentAssets = b.CurrentAssets.Round(1)
	out.CurrentLiabilities = b.CurrentLiabilities.Round(1)
	out.NetWorkingCapital = b.NetWorkingCapital.Round(1)
	out.WorkingCapital = b.WorkingCapital.Round(1)
	if b.CurrentRatio.Valid {
		out.CurrentRatio = decimal.NewNullDecimal(b.CurrentRatio.Decimal.Round(2))
	}
	out.BankAccounts = make([]AccountBalance, len(b.BankAccounts))
	for i, acc := range b.BankAccounts {
		acc.Amount = acc.Amount.Round(1)
		acc.OriginalAmount = acc.OriginalAmount.Round(1)
		out.BankAccounts[i] = acc
	}
	return out
}
