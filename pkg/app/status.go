package app

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wtframework/wtf/internal/driverservice"
	"github.com/wtframework/wtf/pkg/config"
	"github.com/wtframework/wtf/pkg/models"
)

func newStatusCommand(o *options) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the remote endpoint accepts new sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return runStatus(ctx, cmd, o.cfg, http.DefaultClient)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	return cmd
}

func runStatus(ctx context.Context, cmd *cobra.Command, cfg config.FactoryConfig, client driverservice.HTTPClient) error {
	url := cfg.RemoteURL()
	if url == "" {
		return models.MissingConfiguration(config.RemoteURLKey)
	}

	status, err := driverservice.CheckStatus(ctx, client, url)
	if err != nil {
		return errors.Wrapf(err, "%s is not reachable", url)
	}
	if err := printOutput(cmd.OutOrStdout(), status.Value, ""); err != nil {
		return err
	}
	if !status.Value.Ready {
		return errors.Errorf("%s is not ready", url)
	}
	return nil
}
