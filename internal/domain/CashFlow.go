package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowCategory é a classificação de uma transação no fluxo de caixa.
type FlowCategory string

const (
	FlowOperatingInflow  FlowCategory = "operating_inflow"
	FlowOperatingOutflow FlowCategory = "operating_outflow"
	FlowInvesting        FlowCategory = "investing"
	FlowFinancingInflow  FlowCategory = "financing_inflow"
	FlowFinancingOutflow FlowCategory = "financing_outflow"
)

// TransactionSource indica de qual listagem a transação veio.
type TransactionSource string

const (
	SourceBank            TransactionSource = "bank"
	SourceCustomerPayment TransactionSource = "customer_payment"
	SourceVendorPayment   TransactionSource = "vendor_payment"
	SourceExpense         TransactionSource = "expense"
)

// Transaction é uma movimentação bancária ou pagamento de contato.
// Amount positivo é entrada de caixa e negativo é saída. Counterparty é o contato
// ou favorecido quando a listagem informa um.
type Transaction struct {
	ID           string            `json:"id"`
	Source       TransactionSource `json:"source"`
	Type         string            `json:"type"`
	Description  string            `json:"description"`
	Counterparty string            `json:"counterparty,omitempty"`
	AccountID    string            `json:"account_id,omitempty"`
	AccountName  string            `json:"account_name,omitempty"`
	Date         *time.Time        `json:"date,omitempty"`
	Amount       decimal.Decimal   `json:"amount"`
}

func (t Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}

type FlowTotals struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

func (f FlowTotals) Rounded() FlowTotals {
	return FlowTotals{Inflow: f.Inflow.Round(1), Outflow: f.Outflow.Round(1), Net: f.Net.Round(1)}
}

// CashFlowSummary resume as entradas e saídas por atividade na janela.
type CashFlowSummary struct {
	Window             QueryWindow      `json:"window"`
	Operating          FlowTotals       `json:"operating"`
	Investing          FlowTotals       `json:"investing"`
	Financing          FlowTotals       `json:"financing"`
	NetChange          decimal.Decimal  `json:"net_change"`
	TotalInflow        decimal.Decimal  `json:"total_inflow"`
	TotalOutflow       decimal.Decimal  `json:"total_outflow"`
	Transactions       int              `json:"transactions"`
	Unmatched          int              `json:"unmatched"`
	StatementOperating *decimal.Decimal `json:"statement_operating,omitempty"`
}

func (c CashFlowSummary) Rounded() CashFlowSummary {
	out := c
	out.Operating = c.Operating.Rounded()
	out.Investing = c.Investing.Rounded()
	out.Financing = c.Financing.Rounded()
	out.NetChange = c.NetChange.Round(1)
	out.TotalInflow = c.TotalInflow.Round(1)
	out.TotalOutflow = c.TotalOutflow.Round(1)
	if c.StatementOperating != nil {
		v := c.StatementOperating.Round(1)
		out.StatementOperating = &v
	}
	return out
}

// BankAccountActivity resume as movimentações de uma conta bancária.
type BankAccountActivity struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Count       int             `json:"count"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Net         decimal.Decimal `json:"net"`
}
