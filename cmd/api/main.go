package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/api"
	"github.com/vfg2006/finance-dashboard-api/internal/api/handler"
	"github.com/vfg2006/finance-dashboard-api/internal/app"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/scheduler"
	"github.com/vfg2006/finance-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("api: log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer application.Close()

	cacheWarmup := scheduler.NewCacheWarmupService(application.Reporting, cfg, nil)
	if err := cacheWarmup.Start(ctx); err != nil {
		logrus.WithError(err).Error("api: failed to start cache warm-up scheduler")
	}

	server, err := api.New(
		cfg,
		application.Reporting,
		application.Authenticator,
		handler.CronJobServices{handler.CronJobTypeCacheWarmup: cacheWarmup},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
