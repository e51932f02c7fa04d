package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-tracker-api/internal/config"
)

type reloaderFunc func(ctx context.Context) error

func (f reloaderFunc) Reload(ctx context.Context) error {
	return f(ctx)
}

func TestDatasetReloadService_RunReload(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "Recarga com sucesso"},
		{name: "Recarga com erro mantém status", err: errors.New("fixture inválida"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			reloader := reloaderFunc(func(ctx context.Context) error {
				calls.Add(1)
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.err
			})

			cfg := &config.Config{DatasetReload: config.DatasetReload{CronSchedule: "*/30 * * * *"}}
			service := NewDatasetReloadService(reloader, cfg)

			err := service.RunReload(t.Context())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "fixture inválida", service.GetStatus()["last_error"])
			} else {
				require.NoError(t, err)
				assert.NotContains(t, service.GetStatus(), "last_error")
			}
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	reloader := reloaderFunc(func(context.Context) error {
		calls.Add(1)
		<-release
		return nil
	})

	service := NewDatasetReloadService(reloader, &config.Config{})

	require.True(t, service.TriggerManualSync())
	assert.False(t, service.TriggerManualSync())
	assert.NoError(t, service.RunReload(t.Context()), "execução concorrente é ignorada")

	close(release)

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
