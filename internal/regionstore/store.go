// Package regionstore guarda a região selecionada e avisa quem observa a troca.
package regionstore

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/utils"
)

// Listener é chamado após a troca de região, fora do lock
type Listener func(previous, current domain.Region)

type Store struct {
	mu        sync.RWMutex
	region    domain.Region
	listeners map[string]Listener
	order     []string
}

// New cria o store com a região inicial; regiões inválidas caem para Oslo
func New(initial domain.Region) *Store {
	if !initial.Valid() {
		logrus.WithField("region", initial).Warn("Região inicial inválida, usando Oslo")
		initial = domain.RegionOslo
	}

	return &Store{
		region:    initial,
		listeners: make(map[string]Listener),
	}
}

func (s *Store) Get() domain.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.region
}

// Set troca a região e notifica os observadores quando o valor muda.
// Retorna false se a região já era a selecionada.
func (s *Store) Set(region domain.Region) (bool, error) {
	if !region.Valid() {
		return false, domain.ErrUnknownRegion
	}

	s.mu.Lock()
	previous := s.region
	if previous == region {
		s.mu.Unlock()
		return false, nil
	}
	s.region = region

	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"from": previous,
		"to":   region,
	}).Info("Região selecionada alterada")

	for _, listener := range listeners {
		listener(previous, region)
	}

	return true, nil
}

// Subscribe registra um observador e retorna o ID para cancelar a inscrição
func (s *Store) Subscribe(listener Listener) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners[id] = listener
	s.order = append(s.order, id)
	return id, nil
}

func (s *Store) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)

	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
