package webdriver

import (
	"time"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/pkg/config"
	"github.com/wtframework/wtf/pkg/event"
	evmodels "github.com/wtframework/wtf/pkg/event/models"
)

const blankPage = "about:blank"

// Manager holds at most one active driver and decides whether to reuse it or create a new one.
// A Manager must not be used from several goroutines at once.
type Manager struct {
	factory     DriverFactory
	registry    *Registry
	reuse       bool
	active      selenium.WebDriver
	activeSince time.Time
	eb          event.EventBroker
	l           *zap.SugaredLogger
}

func NewManager(factory DriverFactory, registry *Registry, cfg config.ManagerConfig, l *zap.Logger) *Manager {
	registry.SetShutdownHook(cfg.ShutdownHook())
	return &Manager{
		factory:  factory,
		registry: registry,
		reuse:    cfg.ReuseBrowser(),
		l:        l.Sugar().Named("manager"),
	}
}

// PublishEvents makes the manager publish driver lifecycle events to eb.
func (m *Manager) PublishEvents(eb event.EventBroker) {
	m.eb = eb
}

// NewDriver returns a driver ready for a new test. With browser reuse enabled the active driver is
// reset and returned, or replaced when the reset fails. Otherwise a new driver is created every time and
// the previous one is left to registry cleanup.
func (m *Manager) NewDriver(testName string) (selenium.WebDriver, Status, error) {
	start := time.Now()
	wd, status, err := m.newDriver(testName)
	m.publish(evmodels.NewDriverAcquiredEvent(evmodels.DriverAcquired{
		TestName: testName,
		Status:   status.String(),
		Duration: time.Since(start),
		Error:    err,
	}))
	return wd, status, err
}

func (m *Manager) newDriver(testName string) (selenium.WebDriver, Status, error) {
	if !m.reuse || m.active == nil {
		wd, err := m.create(testName)
		if err != nil {
			return nil, 0, err
		}
		m.l.Infow("new driver", zap.Stringer("status", Created), zap.String("test", testName))
		return wd, Created, nil
	}

	err := m.reset(m.active)
	if err == nil {
		m.l.Debugw("reusing driver", zap.Stringer("status", Reused), zap.String("test", testName))
		return m.active, Reused, nil
	}

	m.l.Warnw("active driver is unusable, replacing it", zap.Error(err))
	if qErr := m.active.Quit(); qErr != nil {
		m.l.Warnw("failed to quit unusable driver", zap.Error(qErr))
	}
	m.registry.Remove(m.active)
	m.active = nil

	wd, err := m.create(testName)
	if err != nil {
		m.l.Errorw("failed to replace driver", zap.Stringer("status", ReplacementFailed), zap.Error(err))
		return nil, ReplacementFailed, errors.Wrap(err, "failed to replace unusable driver")
	}
	m.l.Infow("driver replaced", zap.Stringer("status", Replaced), zap.String("test", testName))
	return wd, Replaced, nil
}

// GetDriver returns the active driver or creates one. Unlike NewDriver it neither applies the reuse policy
// nor registers the created driver for cleanup.
func (m *Manager) GetDriver() (selenium.WebDriver, error) {
	if m.active != nil {
		return m.active, nil
	}

	m.l.Debug("creating driver without registering it for cleanup")
	wd, err := m.factory.CreateDriver("")
	if err != nil {
		return nil, err
	}
	m.setActive(wd)
	return wd, nil
}

// CloseDriver quits the active driver. Failures are logged, the driver is forgotten in any case.
func (m *Manager) CloseDriver() {
	if m.active == nil {
		return
	}

	if m.reuse {
		if err := m.reset(m.active); err != nil {
			m.l.Warnw("failed to reset driver before closing", zap.Error(err))
		}
	}
	if err := m.active.Quit(); err != nil {
		m.l.Warnw("failed to quit driver", zap.Error(err))
	}
	m.registry.Remove(m.active)
	m.active = nil
	m.publish(evmodels.NewDriverClosedEvent(evmodels.DriverClosed{Lifetime: time.Since(m.activeSince)}))
}

// IsDriverAvailable reports whether an active driver is held. The driver is not checked to be alive.
func (m *Manager) IsDriverAvailable() bool {
	return m.active != nil
}

func (m *Manager) create(testName string) (selenium.WebDriver, error) {
	wd, err := m.factory.CreateDriver(testName)
	if err != nil {
		return nil, err
	}
	m.registry.Add(wd)
	m.setActive(wd)
	return wd, nil
}

func (m *Manager) setActive(wd selenium.WebDriver) {
	m.active = wd
	m.activeSince = time.Now()
}

func (m *Manager) publish(ev evmodels.IEvent) {
	if m.eb != nil {
		m.eb.Publish(ev)
	}
}

func (m *Manager) reset(wd selenium.WebDriver) error {
	if err := wd.DeleteAllCookies(); err != nil {
		return errors.Wrap(err, "failed to delete cookies")
	}
	if err := wd.Get(blankPage); err != nil {
		return errors.Wrap(err, "failed to open blank page")
	}
	return nil
}
