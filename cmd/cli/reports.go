package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vfg2006/finance-dashboard-api/internal/app"
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/liquidity"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

var windowFlags struct {
	from string
	to   string
}

var dashboardFlags struct {
	reserve string
	policy  string
	horizon int
}

var profitBasis string

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&windowFlags.from, "from", "", "data inicial (AAAA-MM-DD); padrão: primeiro dia do mês")
	cmd.Flags().StringVar(&windowFlags.to, "to", "", "data final (AAAA-MM-DD); padrão: hoje")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", outputJSON, "formato de saída (json ou text)")
}

func init() {
	addWindowFlags(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardFlags.reserve, "reserve", "", "reserva mínima de caixa")
	dashboardCmd.Flags().StringVar(&dashboardFlags.policy, "policy", "", "política de caixa disponível")
	dashboardCmd.Flags().IntVar(&dashboardFlags.horizon, "horizon", 0, "horizonte da previsão em dias (30, 45, 60 ou 90)")

	addWindowFlags(profitCmd)
	profitCmd.Flags().StringVar(&profitBasis, "basis", string(domain.BasisAccrual), "regime contábil (cash ou accrual)")
}

func cliWindow() (domain.QueryWindow, error) {
	now := time.Now().UTC()
	if windowFlags.from == "" && windowFlags.to == "" {
		return domain.MonthToDate(now), nil
	}

	to := utils.StartOfDay(now)
	if windowFlags.to != "" {
		parsed, err := utils.ParseDate(windowFlags.to)
		if err != nil {
			return domain.QueryWindow{}, err
		}
		to = parsed
	}

	from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	if windowFlags.from != "" {
		parsed, err := utils.ParseDate(windowFlags.from)
		if err != nil {
			return domain.QueryWindow{}, err
		}
		from = parsed
	}

	return domain.NewQueryWindow(from, to)
}

func printJSON(v any) error {
	out, err := utils.PrettyJson(v)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Calcula o painel financeiro completo da janela",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validOutput(outputFormat); err != nil {
			return err
		}
		window, err := cliWindow()
		if err != nil {
			return err
		}

		opts := reporting.DashboardOptions{
			CashOptions: reporting.CashOptions{Policy: liquidity.Policy(dashboardFlags.policy)},
			HorizonDays: dashboardFlags.horizon,
		}
		if dashboardFlags.reserve != "" {
			reserve, err := decimal.NewFromString(dashboardFlags.reserve)
			if err != nil {
				return fmt.Errorf("reserva inválida: %w", err)
			}
			opts.Reserve = &reserve
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		dashboard, err := application.Reporting.Dashboard(cmd.Context(), window, opts)
		if err != nil {
			return err
		}
		if outputFormat == outputText {
			return writeDashboardSummary(cmd.OutOrStdout(), application.Converter, dashboard)
		}
		return printJSON(dashboard)
	},
}

var profitCmd = &cobra.Command{
	Use:   "pnl",
	Short: "Extrai receitas, despesas e lucro líquido da janela",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validOutput(outputFormat); err != nil {
			return err
		}
		window, err := cliWindow()
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		summary, err := application.Reporting.ProfitAndLoss(cmd.Context(), window, domain.Basis(profitBasis))
		if err != nil {
			return err
		}
		if outputFormat == outputText {
			return writeProfitSummary(cmd.OutOrStdout(), application.Converter, summary)
		}
		return printJSON(summary)
	},
}
