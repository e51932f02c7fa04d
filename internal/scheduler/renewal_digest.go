package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/config"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
)

// DigestRecorder publica o resumo, por exemplo como gauges
type DigestRecorder interface {
	SetRenewalDigest(digest *domain.RenewalDigest)
}

type RenewalDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// RenewalDigestService calcula periodicamente o resumo de renovações por região
type RenewalDigestService struct {
	scheduler *gocron.Scheduler
	renewals  renewals.RenewalService
	recorder  DigestRecorder
	config    RenewalDigestConfig
	clock     func() time.Time
	state     jobState

	digestMu sync.RWMutex
	digests  map[domain.Region]*domain.RenewalDigest
}

func NewRenewalDigestService(renewalService renewals.RenewalService, recorder DigestRecorder, cfg *config.Config) *RenewalDigestService {
	digestConfig := RenewalDigestConfig{
		CronSchedule: cfg.RenewalDigest.CronSchedule,
		Enabled:      cfg.RenewalDigest.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
	}).Info("Configuração do resumo de renovações carregada")

	return &RenewalDigestService{
		scheduler: gocron.NewScheduler(time.UTC),
		renewals:  renewalService,
		recorder:  recorder,
		config:    digestConfig,
		clock:     time.Now,
		digests:   make(map[domain.Region]*domain.RenewalDigest),
	}
}

func (s *RenewalDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do resumo de renovações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo de renovações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Erro no resumo de renovações")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de renovações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo de renovações")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest calcula o resumo de todas as regiões com o relógio atual.
// Uma região com erro não impede as demais.
func (s *RenewalDigestService) RunDigest() error {
	if !s.state.begin() {
		logrus.Warn("Resumo de renovações já está em execução")
		return nil
	}

	err := s.runDigest()
	s.state.end(err)
	return err
}

func (s *RenewalDigestService) runDigest() error {
	now := s.clock()
	var failed []domain.Region

	for _, region := range domain.Regions() {
		digest, err := s.renewals.Digest(region, now)
		if err != nil {
			logrus.WithError(err).WithField("region", region).Error("Erro ao calcular resumo de renovações")
			failed = append(failed, region)
			continue
		}

		s.digestMu.Lock()
		s.digests[region] = digest
		s.digestMu.Unlock()

		if s.recorder != nil {
			s.recorder.SetRenewalDigest(digest)
		}

		fields := logrus.Fields{
			"region":        region,
			"at_risk_value": digest.AtRiskValue,
		}
		for _, entry := range digest.Entries {
			fields[string(entry.Urgency)] = entry.Count
		}
		logrus.WithFields(fields).Info("Resumo de renovações calculado")
	}

	if len(failed) > 0 {
		return fmt.Errorf("resumo falhou para %v", failed)
	}
	return nil
}

// LastDigest retorna o último resumo calculado pelo job para a região
func (s *RenewalDigestService) LastDigest(region domain.Region) (*domain.RenewalDigest, bool) {
	s.digestMu.RLock()
	defer s.digestMu.RUnlock()

	digest, ok := s.digests[region]
	return digest, ok
}

// TriggerManualSync dispara o resumo em background; false se já estiver rodando
func (s *RenewalDigestService) TriggerManualSync() bool {
	if !s.state.begin() {
		logrus.Info("Resumo de renovações já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando resumo manual de renovações")
	go func() {
		err := s.runDigest()
		if err != nil {
			logrus.WithError(err).Error("Erro no resumo manual de renovações")
		}
		s.state.end(err)
	}()
	return true
}

func (s *RenewalDigestService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.Enabled
	status["sync_cron"] = s.config.CronSchedule
	return status
}
