// Package watcher observa o diretório de fixtures e dispara recargas com debounce.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce agrupa gravações em sequência (editor salvando, git checkout)
// em uma única recarga
const DefaultDebounce = 250 * time.Millisecond

type Watcher struct {
	fsw      *fsnotify.Watcher
	mu       sync.Mutex
	timer    *time.Timer
	delay    time.Duration
	callback func()
}

// New observa os diretórios informados. O callback só é chamado para
// alterações em arquivos .yaml/.yml.
func New(paths []string, delay time.Duration, callback func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Watcher{
		fsw:      fsw,
		delay:    delay,
		callback: callback,
	}, nil
}

// Run bloqueia até o contexto ser cancelado. Erros do fsnotify vão para errFn.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				w.stopTimer()
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isFixture(event.Name) {
				continue
			}
			w.debounce()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				w.stopTimer()
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

func (w *Watcher) Close() error {
	w.stopTimer()
	return w.fsw.Close()
}

func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.callback)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}

func isFixture(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
