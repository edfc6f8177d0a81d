package capabilities

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/tebeka/selenium"

	"github.com/wtframework/wtf/pkg/models"
)

const (
	NameCapability        = "name"
	BrowserNameCapability = "browserName"

	platformAny = "ANY"
)

// Template returns a fresh copy of the base desired capabilities for b.
// Returned maps are never shared, callers may modify them.
func Template(b models.BrowserType) (selenium.Capabilities, bool) {
	switch b {
	case models.Firefox:
		return selenium.Capabilities{
			"browserName":       "firefox",
			"version":           "",
			"platform":          platformAny,
			"javascriptEnabled": true,
			"marionette":        true,
		}, true
	case models.InternetExplorer:
		return selenium.Capabilities{
			"browserName":       "internet explorer",
			"version":           "",
			"platform":          "WINDOWS",
			"javascriptEnabled": true,
		}, true
	case models.Chrome:
		return selenium.Capabilities{
			"browserName":       "chrome",
			"version":           "",
			"platform":          platformAny,
			"javascriptEnabled": true,
		}, true
	case models.Opera:
		return selenium.Capabilities{
			"browserName": "opera",
			"version":     "",
			"platform":    platformAny,
		}, true
	case models.Safari:
		return selenium.Capabilities{
			"browserName":       "safari",
			"version":           "",
			"platform":          "MAC",
			"javascriptEnabled": true,
		}, true
	case models.HTMLUnit:
		return selenium.Capabilities{
			"browserName": "htmlunit",
			"version":     "",
			"platform":    platformAny,
		}, true
	case models.HTMLUnitWithJS:
		return selenium.Capabilities{
			"browserName":       "htmlunit",
			"version":           "firefox",
			"platform":          platformAny,
			"javascriptEnabled": true,
		}, true
	case models.IPhone:
		return selenium.Capabilities{
			"browserName": "iPhone",
			"version":     "",
			"platform":    "MAC",
		}, true
	case models.IPad:
		return selenium.Capabilities{
			"browserName": "iPad",
			"version":     "",
			"platform":    "MAC",
		}, true
	case models.Android:
		return selenium.Capabilities{
			"browserName": "android",
			"version":     "",
			"platform":    "ANDROID",
		}, true
	case models.PhantomJS:
		return selenium.Capabilities{
			"browserName":       "phantomjs",
			"version":           "",
			"platform":          platformAny,
			"javascriptEnabled": true,
		}, true
	}
	return nil, false
}

// Build assembles remote desired capabilities: the browser template, overlaid with extra
// (non-string values are stringified), then the name capability. testName is the configured
// base name, suffix the caller supplied one. No name is set when testName is empty.
func Build(b models.BrowserType, extra map[string]interface{}, testName, suffix string) (selenium.Capabilities, error) {
	caps, ok := Template(b)
	if !ok {
		return nil, &models.UnsupportedBrowserTypeError{Browser: string(b), Strategy: models.RemoteDriver}
	}

	overlay := make(selenium.Capabilities, len(extra))
	for k, v := range extra {
		overlay[k] = stringify(v)
	}
	if err := mergo.Merge(&caps, overlay, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, "failed to merge desired capabilities")
	}

	if testName != "" {
		name := testName
		if suffix != "" {
			name += "-" + suffix
		}
		caps[NameCapability] = name
	}
	return caps, nil
}

// Describe decodes the well known part of caps.
func Describe(caps selenium.Capabilities) (*models.SessionCapabilities, error) {
	res := new(models.SessionCapabilities)
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           res,
		TagName:          "caps",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Decode(map[string]interface{}(caps)); err != nil {
		return nil, errors.Wrap(err, "failed to decode capabilities")
	}
	return res, nil
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
