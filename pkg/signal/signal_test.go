package signal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

func TestHandler_Shutdown(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Second, zaptest.NewLogger(t))

	var (
		m     sync.Mutex
		calls []string
	)
	record := func(name string, err error) ShutdownHook {
		return func(_ context.Context) error {
			m.Lock()
			defer m.Unlock()
			calls = append(calls, name)
			return err
		}
	}

	h.RegisterShutdownHook("a", record("a1", nil))
	h.RegisterShutdownHook("a", record("a2", errors.New("fake error")))
	h.RegisterShutdownHook(nil, record("n1", nil))

	g.Expect(h.Shutdown(context.Background())).To(Succeed())

	m.Lock()
	got := append([]string(nil), calls...)
	m.Unlock()
	g.Expect(got).To(ConsistOf("a1", "a2", "n1"))
	// hooks of one group run in reverse registration order
	g.Expect(indexOf(got, "a2")).To(BeNumerically("<", indexOf(got, "a1")))

	// second shutdown is a no-op
	g.Expect(h.Shutdown(context.Background())).To(Succeed())
	m.Lock()
	g.Expect(calls).To(HaveLen(3))
	m.Unlock()
}

func TestHandler_ShutdownTimeout(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Hour, zaptest.NewLogger(t))

	release := make(chan struct{})
	defer close(release)
	h.RegisterShutdownHook(nil, func(_ context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	g.Expect(h.Shutdown(ctx)).To(MatchError(context.DeadlineExceeded))
}

func TestHandler_ShutdownIgnoresSignalTimeout(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(10*time.Millisecond, zaptest.NewLogger(t))

	finished := false
	h.RegisterShutdownHook(nil, func(_ context.Context) error {
		time.Sleep(50 * time.Millisecond)
		finished = true
		return nil
	})

	g.Expect(h.Shutdown(context.Background())).To(Succeed())
	g.Expect(finished).To(BeTrue())
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}
