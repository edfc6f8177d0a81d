package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wtframework/wtf/pkg/capabilities"
	"github.com/wtframework/wtf/pkg/config"
	"github.com/wtframework/wtf/pkg/models"
)

type capsOptions struct {
	name    string
	format  string
	summary bool
}

func newCapsCommand(o *options) *cobra.Command {
	opts := &capsOptions{}

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Print desired capabilities sent to the remote endpoint",
		Long: `Prints the desired capabilities a REMOTE session would be requested with: the browser template,
configured selenium.desired_capabilities and the session name.

Example:
  wtf caps -b chrome --test-name smoke -n login
  wtf caps --format '{{ .browserName | upper }} {{ .name | default "unnamed" }}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCaps(cmd, o.cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Suffix appended to the test name of the session")
	cmd.Flags().StringVar(&opts.format, "format", "", "Go template to render capabilities with (sprig functions available)")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print browser, version, platform and name only")

	return cmd
}

func runCaps(cmd *cobra.Command, cfg config.FactoryConfig, opts *capsOptions) error {
	name, err := cfg.Browser()
	if err != nil {
		if !errors.Is(err, models.ErrMissingConfiguration) {
			return err
		}
		name = string(models.Firefox)
	}
	browser, ok := models.ParseBrowserType(name)
	if !ok {
		return &models.UnsupportedBrowserTypeError{Browser: name, Strategy: models.RemoteDriver}
	}

	baseName, _ := cfg.TestName()
	caps, err := capabilities.Build(browser, cfg.DesiredCapabilities(), baseName, opts.name)
	if err != nil {
		return err
	}

	if opts.summary {
		sc, err := capabilities.Describe(caps)
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), sc, opts.format)
	}
	return printOutput(cmd.OutOrStdout(), map[string]interface{}(caps), opts.format)
}
