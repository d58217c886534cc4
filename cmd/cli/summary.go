package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
)

const (
	outputJSON = "json"
	outputText = "text"
)

var outputFormat string

// formatter formata valores na moeda base.
type formatter interface {
	Format(amount decimal.Decimal) string
}

func validOutput(format string) error {
	if format != outputJSON && format != outputText {
		return fmt.Errorf("formato de saída inválido: %s (use json ou text)", format)
	}
	return nil
}

func writeProfitSummary(w io.Writer, f formatter, pl *domain.ProfitAndLoss) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "P&L %s a %s (%s)\t\n", pl.Window.FromString(), pl.Window.ToString(), pl.Basis)

	m := pl.Metrics
	rows := []struct {
		label  string
		figure domain.Figure
	}{
		{"Receita", m.Sales},
		{"Custo das vendas", m.COGS},
		{"Lucro bruto", m.GrossProfit},
		{"Despesas operacionais", m.OperatingExpenses},
		{"Lucro operacional", m.OperatingProfit},
		{"Lucro líquido", m.NetProfit},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.label, f.Format(row.figure.Value), row.figure.Provenance)
	}

	return tw.Flush()
}

func writeDashboardSummary(w io.Writer, f formatter, d *reporting.Dashboard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Painel %s a %s (%s)\t\n", d.Window.FromString(), d.Window.ToString(), d.BaseCurrency)

	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Lucro líquido (competência)", d.ProfitAndLoss.Metrics.NetProfit.Value},
		{"Lucro líquido (caixa)", d.CashProfitAndLoss.Metrics.NetProfit.Value},
		{"Caixa em bancos", d.Balance.BankTotal},
		{"Contas a receber", d.Receivables.Outstanding},
		{"Contas a pagar", d.Payables.Outstanding},
		{"Capital de giro líquido", d.Balance.NetWorkingCapital},
		{"Caixa disponível", d.CashAvailability.CashAvailable},
		{"Receita do período", d.Customers.RevenuePeriod},
		{"Gasto com fornecedores", d.Vendors.SpendPeriod},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", row.label, f.Format(row.amount))
	}
	if d.CashAvailability.Shortage {
		fmt.Fprintf(tw, "Falta de caixa\t%s\t\n", d.CashAvailability.Policy)
	}
	for _, warning := range d.Warnings {
		fmt.Fprintf(tw, "Aviso\t%s\t\n", warning.SubReport)
	}

	return tw.Flush()
}
