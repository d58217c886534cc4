package reporting

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/finance-dashboard-api/pkg/log"
)

// SubReport identifica uma sub-consulta de um fluxo composto.
type SubReport string

const (
	SubProfitAndLoss     SubReport = "profit_and_loss"
	SubBalanceSheet      SubReport = "balance_sheet"
	SubCashFlowStatement SubReport = "cash_flow_statement"
	SubMonthly           SubReport = "monthly"
	SubReceivables       SubReport = "receivables"
	SubPayables          SubReport = "payables"
	SubBankAccounts      SubReport = "bank_accounts"
	SubTransactions      SubReport = "transactions"
	SubContacts          SubReport = "contacts"
)

// RequiredSubReports é a tabela de política: sub-consultas obrigatórias interrompem o fluxo
// em caso de falha; as demais degradam para vazio/zero e geram um aviso.
var RequiredSubReports = map[SubReport]bool{
	SubProfitAndLoss: true,
	SubBalanceSheet:  true,
}

// Result é o retorno explícito de uma sub-consulta.
type Result[T any] struct {
	Value    T
	Err      error
	Degraded bool
}

// Warning registra uma sub-consulta opcional que falhou.
type Warning struct {
	SubReport SubReport `json:"sub_report"`
	Message   string    `json:"message"`
}

type warnings struct {
	items []Warning
}

func (w *warnings) add(sub SubReport, err error) {
	if w == nil {
		return
	}
	w.items = append(w.items, Warning{SubReport: sub, Message: err.Error()})
}

// fetch executa a sub-consulta conforme a tabela de política.
func fetch[T any](ctx context.Context, w *warnings, sub SubReport, fn func(required bool) (T, error)) (Result[T], error) {
	required := RequiredSubReports[sub]

	value, err := fn(required)
	if err == nil {
		return Result[T]{Value: value}, nil
	}

	if required {
		return Result[T]{Err: err}, errors.Wrapf(err, "falha na consulta obrigatória %s", sub)
	}

	log.ForContext(ctx).
		WithField("sub_report", string(sub)).
		WithError(err).
		Warn("reporting: best-effort fetch degraded")
	w.add(sub, err)

	var zero T
	return Result[T]{Value: zero, Err: err, Degraded: true}, nil
}
