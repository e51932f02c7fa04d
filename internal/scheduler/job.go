// Package scheduler contém os jobs agendados do CRM
package scheduler

import (
	"sync"
	"time"
)

// jobState controla a execução única de um job e guarda os horários da última rodada
type jobState struct {
	mu                  sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastErr             error
}

// begin marca o job como em execução; false se já estava rodando
func (j *jobState) begin() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}
	j.running = true
	j.lastSyncStartedAt = time.Now()
	return true
}

func (j *jobState) end(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastSyncCompletedAt = time.Now()
	j.lastErr = err
}

func (j *jobState) status() map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()

	status := map[string]any{
		"running":                j.running,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
	}
	if j.lastErr != nil {
		status["last_error"] = j.lastErr.Error()
	}
	return status
}
