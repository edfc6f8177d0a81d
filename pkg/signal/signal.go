package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type ShutdownHook func(ctx context.Context) error

// Handler runs registered shutdown hooks either when a termination signal is caught (Start)
// or when the process finishes on its own (Shutdown). Hooks run at most once.
type Handler struct {
	hooks   map[any][]ShutdownHook
	m       sync.Mutex
	once    sync.Once
	timeout time.Duration
	l       *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		hooks:   make(map[any][]ShutdownHook),
		timeout: timeout,
		l:       l.Sugar(),
	}
}

// Start blocks until SIGINT/SIGTERM, runs the hooks within the handler timeout and returns the exit code to use.
func (h *Handler) Start() int {
	c := make(chan os.Signal, 2)

	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	sig := <-c

	h.l.Infow("signal caught, shutting down...", zap.String("signal", sig.String()))

	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	done := h.performShutdown(ctx)

	select {
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v, exiting immediately", h.timeout)
		return 1
	case <-done:
		h.l.Infof("graceful shutdown completed in %v", time.Since(start))
		return 0
	case sig = <-c:
		h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
	}

	return 1
}

// Shutdown runs the hooks without waiting for a signal and waits for them until ctx is done.
// The handler timeout only bounds the signal path.
func (h *Handler) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.performShutdown(ctx):
		return nil
	}
}

func (h *Handler) RegisterShutdownHook(group any, hook ShutdownHook) {
	h.m.Lock()
	defer h.m.Unlock()
	h.hooks[group] = append(h.hooks[group], hook)
}

func (h *Handler) performShutdown(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	ran := false
	h.once.Do(func() {
		ran = true
		h.m.Lock()
		groups := make([][]ShutdownHook, 0, len(h.hooks))
		for _, s := range h.hooks {
			groups = append(groups, s)
		}
		h.m.Unlock()

		var wg sync.WaitGroup
		for _, s := range groups {
			wg.Add(1)
			go func(hooks []ShutdownHook) {
				defer wg.Done()
				for i := len(hooks) - 1; i >= 0; i-- {
					if err := hooks[i](ctx); err != nil {
						h.l.Warnw("shutdown hook failed", zap.Error(err))
					}
				}
			}(s)
		}

		go func() {
			defer close(done)
			wg.Wait()
		}()
	})
	if !ran {
		close(done)
	}
	return done
}
