package config

import (
	"github.com/spf13/pflag"
)

// command line flag -> configuration key
var flagKeys = map[string]string{
	configFiles:         configFiles,
	"type":              DriverTypeKey,
	"browser":           BrowserKey,
	"remote-url":        RemoteURLKey,
	"chromedriver-path": ChromeDriverPathKey,
	"geckodriver-path":  GeckoDriverPathKey,
	"start-timeout":     StartTimeoutKey,
	"reuse-browser":     ReuseBrowserKey,
	"shutdown-hook":     ShutdownHookKey,
	"test-name":         TestNameKey,
}

// RegisterFlags adds configuration override flags to f. Flags that are not given on the command line
// never shadow config files or environment variables.
func RegisterFlags(f *pflag.FlagSet) {
	f.StringSliceP(configFiles, "c", nil, "Config files to read, later files are merged over earlier ones "+
		"(default "+defaultConfigFile+" when present)")
	f.String("type", "", `Driver type, valid options are: "LOCAL", "REMOTE"`)
	f.StringP("browser", "b", "", "Browser key, e.g. FIREFOX, CHROME, INTERNETEXPLORER")
	f.String("remote-url", "", "Remote Selenium endpoint URL (REMOTE driver type only)")
	f.String("chromedriver-path", "", "Path to chromedriver executable (LOCAL chrome only)")
	f.String("geckodriver-path", "", "Path to geckodriver executable (LOCAL firefox only)")
	f.Duration("start-timeout", defaultStartTimeout, "Time to wait for a local driver process to get ready")
	f.Bool("reuse-browser", true, "Reuse the browser between driver requests")
	f.Bool("shutdown-hook", true, "Quit all created browsers on exit")
	f.String("test-name", "", "Test name reported to remote endpoints")
}

