package webdriver

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/internal/driverservice"
	"github.com/wtframework/wtf/pkg/capabilities"
	"github.com/wtframework/wtf/pkg/config"
	"github.com/wtframework/wtf/pkg/models"
)

const (
	defaultDriverType = models.LocalDriver
	defaultBrowser    = models.Firefox
)

type DriverFactory interface {
	// CreateDriver opens a new browser session. testName is appended to the configured test name
	// in the remote session name.
	CreateDriver(testName string) (selenium.WebDriver, error)
}

type RemoteFunc func(caps selenium.Capabilities, urlPrefix string) (selenium.WebDriver, error)

type SeleniumDriverFactory struct {
	cfg       config.FactoryConfig
	launcher  driverservice.Launcher
	newRemote RemoteFunc
	l         *zap.SugaredLogger
}

func NewSeleniumDriverFactory(cfg config.FactoryConfig, launcher driverservice.Launcher, l *zap.Logger) *SeleniumDriverFactory {
	return &SeleniumDriverFactory{
		cfg:       cfg,
		launcher:  launcher,
		newRemote: selenium.NewRemote,
		l:         l.Sugar().Named("factory"),
	}
}

func (f *SeleniumDriverFactory) CreateDriver(testName string) (selenium.WebDriver, error) {
	dt, err := f.cfg.DriverType()
	if err != nil {
		if !errors.Is(err, models.ErrMissingConfiguration) {
			return nil, err
		}
		f.l.Warnf("%s is not set, defaulting to %s", config.DriverTypeKey, defaultDriverType)
		dt = defaultDriverType
	}

	name, err := f.cfg.Browser()
	if err != nil {
		if !errors.Is(err, models.ErrMissingConfiguration) {
			return nil, err
		}
		f.l.Warnf("%s is not set, defaulting to %s", config.BrowserKey, defaultBrowser)
		name = string(defaultBrowser)
	}

	browser, ok := models.ParseBrowserType(name)
	if !ok {
		return nil, &models.UnsupportedBrowserTypeError{Browser: name, Strategy: dt}
	}

	var wd selenium.WebDriver
	switch dt {
	case models.LocalDriver:
		wd, err = f.createLocal(browser)
	case models.RemoteDriver:
		wd, err = f.createRemote(browser, testName)
	default:
		return nil, errors.Errorf("unknown driver type %s", dt)
	}
	if err != nil {
		return nil, err
	}

	if browser.Maximizable() {
		if err := wd.MaximizeWindow(""); err != nil {
			if qErr := wd.Quit(); qErr != nil {
				f.l.Warnw("failed to quit driver", zap.Error(qErr))
			}
			return nil, errors.Wrapf(err, "failed to maximize %s window", browser)
		}
	}

	f.l.Infow("driver created", zap.String("type", string(dt)), zap.String("browser", string(browser)))
	return wd, nil
}

func (f *SeleniumDriverFactory) createRemote(browser models.BrowserType, testName string) (selenium.WebDriver, error) {
	url := f.cfg.RemoteURL()
	if url == "" {
		return nil, models.MissingConfiguration(config.RemoteURLKey)
	}

	baseName, _ := f.cfg.TestName()
	caps, err := capabilities.Build(browser, f.cfg.DesiredCapabilities(), baseName, testName)
	if err != nil {
		return nil, err
	}

	if sc, err := capabilities.Describe(caps); err == nil {
		f.l.Infow("requesting remote session",
			zap.String("url", url),
			zap.String("browserName", sc.GetName()),
			zap.String("version", sc.GetVersion()),
			zap.String("platform", sc.GetPlatform()),
			zap.String("name", sc.GetTestName()),
		)
	}

	wd, err := f.newRemote(caps, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create remote %s session at %s", browser, url)
	}
	return wd, nil
}

func (f *SeleniumDriverFactory) createLocal(browser models.BrowserType) (selenium.WebDriver, error) {
	spec, err := f.LocalSpec(browser)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.cfg.StartTimeout())
	defer cancel()

	svc, err := f.launcher.Start(ctx, spec)
	if err != nil {
		return nil, err
	}

	tmpl, _ := capabilities.Template(browser)
	caps := selenium.Capabilities{
		capabilities.BrowserNameCapability: tmpl[capabilities.BrowserNameCapability],
	}
	wd, err := f.newRemote(caps, svc.URL())
	if err != nil {
		if sErr := svc.Stop(); sErr != nil {
			f.l.Warnw("failed to stop driver process", zap.String("driver", spec.Name), zap.Error(sErr))
		}
		return nil, errors.Wrapf(err, "failed to create local %s session", browser)
	}

	return &localDriver{
		WebDriver: wd,
		svc:       svc,
		l:         f.l.With(zap.String("driver", spec.Name)),
	}, nil
}

// LocalSpec maps browser to the driver executable serving it on this machine.
// Android, iPad, iPhone, Safari, HtmlUnit and HtmlUnitWithJS are remote-only and
// fail with UnsupportedBrowserTypeError.
func (f *SeleniumDriverFactory) LocalSpec(browser models.BrowserType) (driverservice.Spec, error) {
	path := f.cfg.DriverPath(browser)
	switch browser {
	case models.Chrome:
		if path == "" {
			return driverservice.Spec{}, models.MissingConfiguration(config.ChromeDriverPathKey)
		}
		return driverSpec("chromedriver", path, "--port=%d"), nil
	case models.Firefox:
		return driverSpec("geckodriver", path, "--port=%d"), nil
	case models.InternetExplorer:
		return driverSpec("IEDriverServer", path, "/port=%d"), nil
	case models.Opera:
		return driverSpec("operadriver", path, "--port=%d"), nil
	case models.PhantomJS:
		return driverSpec("phantomjs", path, "--webdriver=%d"), nil
	case models.Android, models.IPad, models.IPhone, models.Safari, models.HTMLUnit, models.HTMLUnitWithJS:
	}
	return driverservice.Spec{}, &models.UnsupportedBrowserTypeError{Browser: string(browser), Strategy: models.LocalDriver}
}

func driverSpec(name, path, portArg string) driverservice.Spec {
	return driverservice.Spec{
		Name:       name,
		Executable: path,
		Args: func(port int) []string {
			return []string{fmt.Sprintf(portArg, port)}
		},
	}
}
