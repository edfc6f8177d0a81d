package webdriver

import (
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/internal/driverservice"
)

// localDriver is a session served by a driver process this package started.
type localDriver struct {
	selenium.WebDriver
	svc driverservice.Service
	l   *zap.SugaredLogger
}

// Quit ends the session and stops the driver process. The process is stopped even when the
// session could not be ended; the session error is returned first.
func (d *localDriver) Quit() error {
	err := d.WebDriver.Quit()
	if sErr := d.svc.Stop(); sErr != nil {
		if err != nil {
			d.l.Warnw("failed to stop driver process", zap.Error(sErr))
			return err
		}
		return sErr
	}
	return err
}
