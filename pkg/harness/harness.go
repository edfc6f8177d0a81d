// Package harness wires configuration, driver factory, manager and registry together and ties
// registry cleanup to the end of a test binary or a termination signal.
//
// Typical use in a test package:
//
//	func TestMain(m *testing.M) {
//		harness.Main(m)
//	}
package harness

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/internal/driverservice"
	"github.com/wtframework/wtf/pkg/config"
	"github.com/wtframework/wtf/pkg/event"
	"github.com/wtframework/wtf/pkg/log"
	"github.com/wtframework/wtf/pkg/signal"
	"github.com/wtframework/wtf/pkg/webdriver"
)

const eventBufferSize = 100

var (
	// bounds cleanup after a termination signal only
	shutdownTimeout = 5 * time.Second

	exit = os.Exit
)

// M is satisfied by *testing.M.
type M interface {
	Run() int
}

type Harness struct {
	Registry *webdriver.Registry
	Factory  *webdriver.SeleniumDriverFactory
	Manager  *webdriver.Manager
	// Events receives lifecycle events of the harness managers, subscriptions are closed on Close.
	Events *event.Broker

	cfg config.Config
	sig *signal.Handler
	l   *zap.Logger
}

func New(cfg config.Config, l *zap.Logger) *Harness {
	reg := webdriver.NewRegistry(l)
	launcher := driverservice.NewProcessLauncher(driverservice.DefaultHTTPClient(), l.Named("driver"))
	factory := webdriver.NewSeleniumDriverFactory(cfg, launcher, l)

	eb := event.NewBroker(eventBufferSize, l)

	sig := signal.NewHandler(shutdownTimeout, l.Named("signal"))
	sig.RegisterShutdownHook(reg, reg.CleanUp)
	sig.RegisterShutdownHook(eb, eb.ShutDown)

	h := &Harness{
		Registry: reg,
		Factory:  factory,
		Events:   eb,
		cfg:      cfg,
		sig:      sig,
		l:        l,
	}
	h.Manager = h.NewManager()
	return h
}

// NewDefault builds a harness from WTF_ environment variables and config files, with the process logger.
func NewDefault() (*Harness, error) {
	l := log.GetLogger()
	cfg, err := config.NewConfig(viper.New(), pflag.NewFlagSet("wtf", pflag.ContinueOnError))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize configuration")
	}
	return New(cfg, l), nil
}

// NewManager returns another manager sharing the harness registry.
func (h *Harness) NewManager() *webdriver.Manager {
	m := webdriver.NewManager(h.Factory, h.Registry, h.cfg, h.l)
	m.PublishEvents(h.Events)
	return m
}

// HandleSignals quits registered drivers and exits the process on SIGINT/SIGTERM.
func (h *Harness) HandleSignals() {
	go func() {
		code := h.sig.Start()
		exit(code)
	}()
}

// Close quits every registered driver, unless the shutdown hook is disabled, and waits for all of them
// however long their sessions and driver processes take to stop. Only the first call has an effect.
func (h *Harness) Close() error {
	return h.sig.Shutdown(context.Background())
}

// Run runs m and closes the harness afterwards, returning the exit code of m.
func (h *Harness) Run(m M) int {
	h.HandleSignals()
	code := m.Run()
	if err := h.Close(); err != nil {
		h.l.Sugar().Warnw("driver cleanup did not complete", zap.Error(err))
	}
	return code
}

// Main is a TestMain helper: it runs the tests with a default harness and exits.
func Main(m M) {
	h, err := NewDefault()
	if err != nil {
		log.GetLogger().Sugar().Fatalw("failed to initialize harness", zap.Error(err))
	}
	exit(h.Run(m))
}
