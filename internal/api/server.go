package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/api/handler"
	"github.com/vfg2006/finance-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/finance-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.ReportingService,
	authenticator authenticating.Authenticator,
	cronJobs handler.CronJobServices,
) (*Server, error) {
	now := handler.Clock(time.Now)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(now)...),
		router.WithRoutes(handler.Reports(reportingService, now)...),
		router.WithRoutes(handler.CronJobs(cronJobs)...),
	)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           Chain(config, authenticator).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Chain monta a cadeia global de middlewares, na ordem de execução.
func Chain(config *config.Config, authenticator authenticating.Authenticator) alice.Chain {
	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("api: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("api: server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("api: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("api: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("api: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: shutdown failed")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("api: http server shut down")
	return nil
}
