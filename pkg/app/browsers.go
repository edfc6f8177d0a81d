package app

import (
	"github.com/spf13/cobra"

	"github.com/wtframework/wtf/pkg/capabilities"
	"github.com/wtframework/wtf/pkg/dto"
	"github.com/wtframework/wtf/pkg/models"
	"github.com/wtframework/wtf/pkg/webdriver"
)

func newBrowsersCommand(o *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "browsers",
		Short: "List browser keys and the drivers serving them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printOutput(cmd.OutOrStdout(), listBrowsers(o.harness().Factory), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Go template to render the list with (sprig functions available)")

	return cmd
}

func listBrowsers(f *webdriver.SeleniumDriverFactory) []dto.Browser {
	var res []dto.Browser
	for _, b := range models.BrowserTypes() {
		info := dto.Browser{Key: b}
		if tmpl, ok := capabilities.Template(b); ok {
			info.Remote = true
			info.BrowserName, _ = tmpl[capabilities.BrowserNameCapability].(string)
		}

		spec, err := f.LocalSpec(b)
		switch {
		case err == nil:
			info.Local = true
			info.Driver = spec.Executable
		case models.IsUnsupportedBrowserType(err):
		default:
			info.Local = true
			info.Error = err.Error()
		}
		res = append(res, info)
	}
	return res
}
