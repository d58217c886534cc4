package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/authenticating"
)

var tokenFlags struct {
	subject string
	role    string
	ttl     time.Duration
}

func init() {
	tokenCmd.Flags().StringVar(&tokenFlags.subject, "subject", "cli", "identificador gravado no token")
	tokenCmd.Flags().StringVar(&tokenFlags.role, "role", domain.RoleViewer, "papel do token (admin ou viewer)")
	tokenCmd.Flags().DurationVar(&tokenFlags.ttl, "ttl", 0, "validade do token; zero usa o padrão configurado")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite um token de acesso para a API",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := authenticating.NewService(cfg, time.Now).GenerateToken(tokenFlags.subject, tokenFlags.role, tokenFlags.ttl)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}
