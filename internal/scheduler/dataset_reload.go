package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/config"
)

// Reloader é implementado por dataset.Store
type Reloader interface {
	Reload(ctx context.Context) error
}

type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetReloadService recarrega o dataset periodicamente
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	reloader  Reloader
	config    DatasetReloadConfig
	state     jobState
	timeout   time.Duration
}

func NewDatasetReloadService(reloader Reloader, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule,
		Enabled:      cfg.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Configuração da recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.UTC),
		reloader:  reloader,
		config:    reloadConfig,
		timeout:   time.Minute,
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReload(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReload executa uma recarga; o snapshot anterior continua valendo se falhar
func (s *DatasetReloadService) RunReload(ctx context.Context) error {
	if !s.state.begin() {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}

	err := s.reload(ctx)
	s.state.end(err)
	return err
}

func (s *DatasetReloadService) reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.reloader.Reload(ctx)
}

// TriggerManualSync dispara a recarga em background; false se já estiver rodando
func (s *DatasetReloadService) TriggerManualSync() bool {
	if !s.state.begin() {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		err := s.reload(context.Background())
		s.state.end(err)
	}()
	return true
}

func (s *DatasetReloadService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.Enabled
	status["sync_cron"] = s.config.CronSchedule
	return status
}
