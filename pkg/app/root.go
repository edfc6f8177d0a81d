package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/pkg/config"
	"github.com/wtframework/wtf/pkg/harness"
)

type options struct {
	cfg config.Config
	l   *zap.Logger
}

// NewRootCommand builds the command tree. Configuration is resolved before any subcommand runs,
// from the persistent flags, WTF_ environment variables and config files.
func NewRootCommand(appName, version string, l *zap.Logger) *cobra.Command {
	o := &options{l: l}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "WebDriver session harness",
		Long: `Opens and manages browser sessions on local driver processes or remote Selenium endpoints.

Configuration keys live under "selenium" in YAML config files and can be overridden with
WTF_ prefixed environment variables (WTF_SELENIUM_BROWSER=chrome) or the flags below.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}
			o.cfg = cfg
			return nil
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newOpenCommand(o))
	cmd.AddCommand(newCapsCommand(o))
	cmd.AddCommand(newBrowsersCommand(o))
	cmd.AddCommand(newStatusCommand(o))
	cmd.AddCommand(newServeFakeCommand(o))

	return cmd
}

func (o *options) harness() *harness.Harness {
	return harness.New(o.cfg, o.l)
}
