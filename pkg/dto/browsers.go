package dto

import "github.com/wtframework/wtf/pkg/models"

// Browser describes how a browser key can be served. Driver is the local driver executable,
// Error tells why the browser can not be served locally with the current configuration.
type Browser struct {
	Key         models.BrowserType `yaml:"key" json:"key"`
	BrowserName string             `yaml:"browserName" json:"browserName"`
	Remote      bool               `yaml:"remote" json:"remote"`
	Local       bool               `yaml:"local" json:"local"`
	Driver      string             `yaml:"driver,omitempty" json:"driver,omitempty"`
	Error       string             `yaml:"error,omitempty" json:"error,omitempty"`
}
