package dataset

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
)

// ReloadObserver recebe o resultado de cada recarga
type ReloadObserver func(source string, duration time.Duration, err error)

// ReloadStatus descreve a última recarga do store
type ReloadStatus struct {
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loaded_at"`
	LastAttempt time.Time `json:"last_attempt"`
	LastError   string    `json:"last_error,omitempty"`
	Counts      Counts    `json:"counts"`
}

type Store struct {
	loader   Loader
	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex

	lastAttempt time.Time
	lastErr     error
	observers   []ReloadObserver
}

func NewStore(loader Loader, observers ...ReloadObserver) *Store {
	return &Store{
		loader:    loader,
		observers: observers,
	}
}

// NewStoreFromSnapshot cria um store já carregado, sem loader
func NewStoreFromSnapshot(snapshot *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snapshot)
	return s
}

// Reload carrega um novo snapshot e só o publica se for válido.
// Em caso de falha o snapshot anterior continua servindo as leituras.
func (s *Store) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if s.loader == nil {
		return ErrNotLoaded
	}

	start := time.Now()
	snapshot, err := s.loader.Load(ctx)
	duration := time.Since(start)

	s.lastAttempt = start
	s.lastErr = err

	for _, observe := range s.observers {
		observe(s.loader.Name(), duration, err)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source":   s.loader.Name(),
			"duration": duration.String(),
		}).WithError(err).Error("Falha ao recarregar dataset, mantendo versão anterior")
		return err
	}

	s.current.Store(snapshot)

	logrus.WithFields(logrus.Fields{
		"source":   snapshot.Source,
		"duration": duration.String(),
	}).Info("Dataset carregado")

	return nil
}

func (s *Store) Snapshot() (*Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}
	return snapshot, nil
}

func (s *Store) Status() ReloadStatus {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	status := ReloadStatus{LastAttempt: s.lastAttempt}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	if snapshot := s.current.Load(); snapshot != nil {
		status.Source = snapshot.Source
		status.LoadedAt = snapshot.LoadedAt
		status.Counts = snapshot.Counts()
	}
	return status
}

func (s *Store) snapshotFor(region domain.Region) (*Snapshot, error) {
	if !region.Valid() {
		return nil, domain.ErrUnknownRegion
	}
	return s.Snapshot()
}

func (s *Store) Leads(region domain.Region) ([]domain.Lead, error) {
	snapshot, err := s.snapshotFor(region)
	if err != nil {
		return nil, err
	}
	return cloneSlice(snapshot.Leads[region]), nil
}

func (s *Store) Accounts(region domain.Region) ([]domain.Account, error) {
	snapshot, err := s.snapshotFor(region)
	if err != nil {
		return nil, err
	}

	accounts := cloneSlice(snapshot.Accounts[region])
	for i := range accounts {
		if accounts[i].NextMeeting != nil {
			next := *accounts[i].NextMeeting
			accounts[i].NextMeeting = &next
		}
	}
	return accounts, nil
}

func (s *Store) Opportunities(region domain.Region) ([]domain.Opportunity, error) {
	snapshot, err := s.snapshotFor(region)
	if err != nil {
		return nil, err
	}
	return cloneSlice(snapshot.Opportunities[region]), nil
}

func (s *Store) Renewals(region domain.Region) ([]domain.Renewal, error) {
	snapshot, err := s.snapshotFor(region)
	if err != nil {
		return nil, err
	}
	return cloneSlice(snapshot.Renewals[region]), nil
}

func (s *Store) Forecast(region domain.Region) (domain.Forecast, error) {
	snapshot, err := s.snapshotFor(region)
	if err != nil {
		return domain.Forecast{}, err
	}

	f := snapshot.Forecasts[region]
	f.Months = cloneSlice(f.Months)
	return f, nil
}

func (s *Store) Dashboard(region domain.Region) (domain.Dashboard, error) {
	snapshot, err := s.snapshotFor(region)
	if err != nil {
		return domain.Dashboard{}, err
	}

	d := snapshot.Dashboards[region]
	d.Meetings = cloneSlice(d.Meetings)
	d.LeadSources.Months = cloneSlice(d.LeadSources.Months)
	series := cloneSlice(d.LeadSources.Series)
	for i := range series {
		series[i].Values = cloneSlice(series[i].Values)
	}
	d.LeadSources.Series = series
	return d, nil
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
