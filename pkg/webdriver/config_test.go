package webdriver

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wtframework/wtf/pkg/config"
)

func newTestConfig(t *testing.T, settings map[string]interface{}) *config.ConfigViper {
	g := NewWithT(t)

	v := viper.New()
	cfg, err := config.NewConfig(v, pflag.NewFlagSet("test", pflag.ContinueOnError))
	g.Expect(err).ToNot(HaveOccurred())
	for k, val := range settings {
		v.Set(k, val)
	}
	return cfg
}
