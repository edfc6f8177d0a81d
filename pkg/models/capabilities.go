package models

// SessionCapabilities Meaningful subset of desired capabilities, decoded from the raw capability map.
// Legacy (JsonWire) and W3C spellings are both accepted.
type SessionCapabilities struct {
	BrowserName    string `caps:"browserName" yaml:"browserName,omitempty"`
	Version        string `caps:"version" yaml:"version,omitempty"`
	BrowserVersion string `caps:"browserVersion" yaml:"browserVersion,omitempty"`
	Platform       string `caps:"platform" yaml:"platform,omitempty"`
	PlatformName   string `caps:"platformName" yaml:"platformName,omitempty"`
	TestName       string `caps:"name" yaml:"name,omitempty"`
}

func (c *SessionCapabilities) GetName() string {
	return c.BrowserName
}

func (c *SessionCapabilities) GetVersion() string {
	if c.BrowserVersion != "" {
		return c.BrowserVersion
	}
	return c.Version
}

func (c *SessionCapabilities) GetPlatform() string {
	if c.PlatformName != "" {
		return c.PlatformName
	}
	return c.Platform
}

func (c *SessionCapabilities) GetTestName() string {
	return c.TestName
}
