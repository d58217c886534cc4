// Package scheduler contém os serviços de agendamento em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/internal/usecases/reporting"
)

type CacheWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheWarmupService consulta o painel do mês corrente em intervalos fixos para que
// as consultas interativas encontrem as respostas da API contábil já em cache.
type CacheWarmupService struct {
	scheduler *gocron.Scheduler
	reporting reporting.ReportingService
	config    CacheWarmupConfig
	now       func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	runs                int
}

func NewCacheWarmupService(service reporting.ReportingService, cfg *config.Config, now func() time.Time) *CacheWarmupService {
	if now == nil {
		now = time.Now
	}

	warmupConfig := CacheWarmupConfig{
		CronSchedule: cfg.CacheWarmup.CronSchedule,
		Enabled:      cfg.CacheWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
	}).Info("scheduler: cache warm-up configuration loaded")

	return &CacheWarmupService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporting: service,
		config:    warmupConfig,
		now:       now,
	}
}

func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: cache warm-up disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.WarmUp(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: cache warm-up failed")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping cache warm-up")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmUp executa uma rodada de aquecimento. Rodadas concorrentes são ignoradas.
func (s *CacheWarmupService) WarmUp(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("scheduler: cache warm-up already running")
		return nil
	}

	err := s.run(ctx)
	s.finish(err)

	return err
}

// TriggerManualSync dispara uma rodada em segundo plano. Devolve false quando já há uma em execução.
func (s *CacheWarmupService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("scheduler: cache warm-up already running, ignoring manual trigger")
		return false
	}

	logrus.Info("scheduler: manual cache warm-up started")
	go func() {
		s.finish(s.run(context.Background()))
	}()

	return true
}

func (s *CacheWarmupService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *CacheWarmupService) finish(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.runs++
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *CacheWarmupService) run(ctx context.Context) error {
	window := domain.MonthToDate(s.now())

	started := time.Now()
	dashboard, err := s.reporting.Dashboard(ctx, window, reporting.DashboardOptions{})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"job":         "cache_warmup",
		"from":        window.FromString(),
		"to":          window.ToString(),
		"warnings":    len(dashboard.Warnings),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("scheduler: cache warm-up completed")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"running":                s.syncRunning,
		"runs":                   s.runs,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
