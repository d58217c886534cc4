// Package app monta as dependências compartilhadas pela API e pela CLI.
package app

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho"
	"github.com/vfg2006/finance-dashboard-api/infrastructure/integrator/zoho/zohoclient"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/cashflow"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/converting"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
)

type App struct {
	Config        *config.Config
	Converter     *converting.Converter
	Client        zohoclient.Client
	Reporting     reporting.ReportingService
	Authenticator authenticating.Authenticator
}

func init() {
	// valores monetários saem como números no JSON
	decimal.MarshalJSONWithoutQuotes = true
}

func New(cfg *config.Config) (*App, error) {
	if !cfg.Zoho.IsConfigured() {
		logrus.Warn("app: accounting API credentials incomplete; upstream calls will fail")
	}

	rates, err := converting.ParseRates(cfg.Engine.FXRates)
	if err != nil {
		return nil, err
	}
	converter, err := converting.NewConverter(cfg.Engine.BaseCurrency, rates)
	if err != nil {
		return nil, err
	}

	session := zohoclient.NewSession(cfg)
	dispatcher := zohoclient.NewDispatcher(cfg, session)
	client := zohoclient.NewClient(cfg, session, dispatcher)

	service, err := reporting.NewReportingService(
		cfg,
		zoho.New(cfg, client),
		converter,
		cashflow.NewClassifier(cashflow.DefaultRules()),
		time.Now,
	)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:        cfg,
		Converter:     converter,
		Client:        client,
		Reporting:     service,
		Authenticator: authenticating.NewService(cfg, time.Now),
	}, nil
}

// Close encerra a sessão com a API contábil.
func (a *App) Close() {
	a.Client.Close()
}
