package models

import "strings"

type DriverType string

const (
	LocalDriver  DriverType = "LOCAL"
	RemoteDriver DriverType = "REMOTE"
)

func ParseDriverType(s string) (DriverType, bool) {
	switch dt := DriverType(strings.ToUpper(strings.TrimSpace(s))); dt {
	case LocalDriver, RemoteDriver:
		return dt, true
	default:
		return "", false
	}
}

// BrowserType is the browser key read from selenium.browser.
type BrowserType string

const (
	Chrome           BrowserType = "CHROME"
	Firefox          BrowserType = "FIREFOX"
	InternetExplorer BrowserType = "INTERNETEXPLORER"
	Opera            BrowserType = "OPERA"
	PhantomJS        BrowserType = "PHANTOMJS"
	Android          BrowserType = "ANDROID"
	IPad             BrowserType = "IPAD"
	IPhone           BrowserType = "IPHONE"
	Safari           BrowserType = "SAFARI"
	HTMLUnit         BrowserType = "HTMLUNIT"
	HTMLUnitWithJS   BrowserType = "HTMLUNITWITHJS"
)

var browserTypes = []BrowserType{
	Chrome,
	Firefox,
	InternetExplorer,
	Opera,
	PhantomJS,
	Android,
	IPad,
	IPhone,
	Safari,
	HTMLUnit,
	HTMLUnitWithJS,
}

// BrowserTypes returns every recognized browser key in declaration order.
func BrowserTypes() []BrowserType {
	res := make([]BrowserType, len(browserTypes))
	copy(res, browserTypes)
	return res
}

// ParseBrowserType matches s against the recognized keys ignoring case.
// "internet-explorer" style spellings are accepted as well.
func ParseBrowserType(s string) (BrowserType, bool) {
	norm := strings.ToUpper(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
	for _, b := range browserTypes {
		if string(b) == norm {
			return b, true
		}
	}
	return "", false
}

// Maximizable reports whether the window of a freshly created session should be maximized.
func (b BrowserType) Maximizable() bool {
	return b != Opera && b != InternetExplorer
}
