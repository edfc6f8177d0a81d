package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wtframework/wtf/pkg/models"
)

var ConfigPrefix = "WTF"

const (
	DriverTypeKey          = "selenium.type"
	BrowserKey             = "selenium.browser"
	RemoteURLKey           = "selenium.remote_url"
	DesiredCapabilitiesKey = "selenium.desired_capabilities"
	ChromeDriverPathKey    = "selenium.chromedriver_path"
	GeckoDriverPathKey     = "selenium.geckodriver_path"
	IEDriverPathKey        = "selenium.iedriver_path"
	OperaDriverPathKey     = "selenium.operadriver_path"
	PhantomJSPathKey       = "selenium.phantomjs_path"
	StartTimeoutKey        = "selenium.start_timeout"
	ReuseBrowserKey        = "selenium.reusebrowser"
	ShutdownHookKey        = "selenium.shutdown_hook"
	TestNameKey            = "TESTNAME"

	configFiles = "config"

	defaultConfigFile   = "config/default.yaml"
	defaultStartTimeout = 30 * time.Second
)

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

type (
	FactoryConfig interface {
		DriverType() (models.DriverType, error)
		Browser() (string, error)
		RemoteURL() string
		DesiredCapabilities() map[string]interface{}
		TestName() (string, bool)
		DriverPath(b models.BrowserType) string
		StartTimeout() time.Duration
	}

	ManagerConfig interface {
		ReuseBrowser() bool
		ShutdownHook() bool
	}

	Config interface {
		FactoryConfig
		ManagerConfig
		ConfigFiles() []string
	}

	ConfigViper struct {
		v       *viper.Viper
		files   []string
		capKeys map[string]string
	}
)

// NewConfig binds command line flags and WTF_ prefixed environment variables to v, then merges
// configuration files in the order they were given. When no file is given, config/default.yaml is
// read if it exists.
func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := bindFlags(v, f); err != nil {
		return nil, err
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}
	v.SetDefault(ReuseBrowserKey, true)
	v.SetDefault(ShutdownHookKey, true)
	v.SetDefault(StartTimeoutKey, defaultStartTimeout)

	files, err := readConfigFiles(v)
	if err != nil {
		return nil, err
	}
	capKeys, err := capabilityKeys(files)
	if err != nil {
		return nil, err
	}

	if v.IsSet(DriverTypeKey) {
		if _, ok := models.ParseDriverType(v.GetString(DriverTypeKey)); !ok {
			return nil, errors.Errorf("invalid %s specified (%s), valid options are: %s",
				DriverTypeKey, v.GetString(DriverTypeKey), quoteStrings([]models.DriverType{models.LocalDriver, models.RemoteDriver}))
		}
	}

	return &ConfigViper{
		v:       v,
		files:   files,
		capKeys: capKeys,
	}, nil
}

func (c *ConfigViper) DriverType() (models.DriverType, error) {
	if !c.v.IsSet(DriverTypeKey) {
		return "", models.MissingConfiguration(DriverTypeKey)
	}
	dt, _ := models.ParseDriverType(c.v.GetString(DriverTypeKey))
	return dt, nil
}

func (c *ConfigViper) Browser() (string, error) {
	if !c.v.IsSet(BrowserKey) || c.v.GetString(BrowserKey) == "" {
		return "", models.MissingConfiguration(BrowserKey)
	}
	return c.v.GetString(BrowserKey), nil
}

func (c *ConfigViper) RemoteURL() string {
	return c.v.GetString(RemoteURLKey)
}

// DesiredCapabilities returns extra capabilities with their key case as written in config files
// (viper itself lower-cases keys, which breaks names like browserVersion).
func (c *ConfigViper) DesiredCapabilities() map[string]interface{} {
	raw := c.v.GetStringMap(DesiredCapabilitiesKey)
	res := make(map[string]interface{}, len(raw))
	for k, val := range raw {
		if orig, ok := c.capKeys[k]; ok {
			k = orig
		}
		res[k] = val
	}
	return res
}

func (c *ConfigViper) TestName() (string, bool) {
	name := c.v.GetString(TestNameKey)
	return name, name != ""
}

// DriverPath returns the executable used to serve b locally. Only chromedriver has no default.
func (c *ConfigViper) DriverPath(b models.BrowserType) string {
	switch b {
	case models.Chrome:
		return c.v.GetString(ChromeDriverPathKey)
	case models.Firefox:
		return c.stringOr(GeckoDriverPathKey, "geckodriver")
	case models.InternetExplorer:
		return c.stringOr(IEDriverPathKey, "IEDriverServer")
	case models.Opera:
		return c.stringOr(OperaDriverPathKey, "operadriver")
	case models.PhantomJS:
		return c.stringOr(PhantomJSPathKey, "phantomjs")
	default:
		return ""
	}
}

func (c *ConfigViper) StartTimeout() time.Duration {
	return c.v.GetDuration(StartTimeoutKey)
}

func (c *ConfigViper) ReuseBrowser() bool {
	return c.v.GetBool(ReuseBrowserKey)
}

func (c *ConfigViper) ShutdownHook() bool {
	return c.v.GetBool(ShutdownHookKey)
}

func (c *ConfigViper) ConfigFiles() []string {
	return c.files
}

func (c *ConfigViper) stringOr(key, def string) string {
	if val := c.v.GetString(key); val != "" {
		return val
	}
	return def
}

func bindFlags(v *viper.Viper, f *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if fl := f.Lookup(flag); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return errors.Wrapf(err, "failed to bind --%s flag", flag)
			}
		}
	}
	return nil
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// plain TESTNAME keeps working along with WTF_TESTNAME
	return v.BindEnv(TestNameKey, ConfigPrefix+"_"+TestNameKey, TestNameKey)
}

func readConfigFiles(v *viper.Viper) ([]string, error) {
	files := v.GetStringSlice(configFiles)
	if len(files) == 0 {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil, nil
		}
		files = []string{defaultConfigFile}
	}

	for _, file := range files {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	return files, nil
}

// capabilityKeys indexes selenium.desired_capabilities keys of YAML/JSON config files by their
// lower-cased form. Files of other formats are skipped.
func capabilityKeys(files []string) (map[string]string, error) {
	keys := make(map[string]string)
	for _, file := range files {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
		var doc struct {
			Selenium struct {
				DesiredCapabilities map[string]yaml.Node `yaml:"desired_capabilities"`
			} `yaml:"selenium"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", file)
		}
		for k := range doc.Selenium.DesiredCapabilities {
			keys[strings.ToLower(k)] = k
		}
	}
	return keys, nil
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
