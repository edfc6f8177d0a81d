package app

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type openOptions struct {
	name string
	hold time.Duration
}

func newOpenCommand(o *options) *cobra.Command {
	opts := &openOptions{}

	cmd := &cobra.Command{
		Use:   "open URL",
		Short: "Open a browser session and navigate to URL",
		Long: `Creates a browser session the way a test would, navigates to URL and prints the session id,
how the session was obtained and the page title. The session is quit on exit unless the shutdown
hook is disabled.

Example:
  wtf open https://example.com -b chrome --type REMOTE --remote-url http://grid:4444/wd/hub`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, o, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Suffix appended to the test name of the session")
	cmd.Flags().DurationVar(&opts.hold, "hold", 0, "Keep the browser open for this long before exiting")

	return cmd
}

func runOpen(cmd *cobra.Command, o *options, opts *openOptions, url string) error {
	h := o.harness()
	h.HandleSignals()
	defer func() {
		_ = h.Close()
	}()

	wd, status, err := h.Manager.NewDriver(opts.name)
	if err != nil {
		return err
	}
	if err := wd.Get(url); err != nil {
		return errors.Wrapf(err, "failed to open %s", url)
	}
	title, err := wd.Title()
	if err != nil {
		return errors.Wrap(err, "failed to get page title")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", wd.SessionID(), status, title)

	if opts.hold > 0 {
		select {
		case <-time.After(opts.hold):
		case <-cmd.Context().Done():
		}
	}
	return nil
}
