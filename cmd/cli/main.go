package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/pkg/log"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "finance-cli",
	Short: "Consulta os relatórios financeiros sem subir a API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.NewConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		log.Setup(cfg.App.LogLevel)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(profitCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
