package webdriver

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"
)

type registryEntry struct {
	id string
	wd selenium.WebDriver
}

// Registry keeps every driver created by managers sharing it, so they can be quit when the process exits.
type Registry struct {
	mu           sync.Mutex
	entries      []registryEntry
	shutdownHook bool
	l            *zap.SugaredLogger
}

func NewRegistry(l *zap.Logger) *Registry {
	return &Registry{
		shutdownHook: true,
		l:            l.Sugar().Named("registry"),
	}
}

// Add registers wd and returns its registry id. Adding the same driver twice returns the existing id.
func (r *Registry) Add(wd selenium.WebDriver) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(wd); i >= 0 {
		return r.entries[i].id
	}
	id := uuid.NewString()
	r.entries = append(r.entries, registryEntry{id: id, wd: wd})
	r.l.Debugw("driver registered", zap.String("id", id), zap.Int("total", len(r.entries)))
	return id
}

// Remove unregisters wd, it reports false when wd was not registered.
func (r *Registry) Remove(wd selenium.WebDriver) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(wd)
	if i < 0 {
		return false
	}
	r.l.Debugw("driver unregistered", zap.String("id", r.entries[i].id))
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true
}

func (r *Registry) Contains(wd selenium.WebDriver) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.indexOf(wd) >= 0
}

// Drivers returns registered drivers in registration order.
func (r *Registry) Drivers() []selenium.WebDriver {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]selenium.WebDriver, len(r.entries))
	for i, e := range r.entries {
		res[i] = e.wd
	}
	return res
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

func (r *Registry) SetShutdownHook(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shutdownHook = enabled
}

func (r *Registry) ShutdownHookEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.shutdownHook
}

// CleanUp quits every registered driver once and empties the registry. Quit failures are logged only,
// so the returned error is always nil. Nothing is done when the shutdown hook is disabled.
func (r *Registry) CleanUp(_ context.Context) error {
	r.mu.Lock()
	if !r.shutdownHook {
		r.mu.Unlock()
		r.l.Debug("shutdown hook is disabled, leaving drivers open")
		return nil
	}
	entries := r.entries
	r.entries = nil
	r.mu.Unlock()

	if len(entries) == 0 {
		return nil
	}

	r.l.Infof("closing %d driver(s)", len(entries))
	for _, e := range entries {
		if err := e.wd.Quit(); err != nil {
			r.l.Warnw("failed to quit driver", zap.String("id", e.id), zap.Error(err))
		}
	}
	return nil
}

func (r *Registry) indexOf(wd selenium.WebDriver) int {
	for i, e := range r.entries {
		if e.wd == wd {
			return i
		}
	}
	return -1
}
