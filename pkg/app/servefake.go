package app

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wtframework/wtf/internal/fakewd"
	"github.com/wtframework/wtf/pkg/signal"
)

const serverShutdownTimeout = 5 * time.Second

func newServeFakeCommand(o *options) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Serve an in-memory WebDriver endpoint",
		Long: `Serves a fake WebDriver endpoint which accepts sessions and records navigation without running
a browser. Use it as selenium.remote_url (root or /wd/hub) to try configurations out.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServeFake(o.l, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:4444", "Address to listen on")

	return cmd
}

func runServeFake(l *zap.Logger, listen string) error {
	srvLog := l.Named("server")
	e := fakewd.NewServer(l).Echo(srvLog)
	sig := signal.NewHandler(serverShutdownTimeout, l.Named("signal"))

	go func() {
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", listen)
		if err := e.Start(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook(nil, e.Shutdown)
	if code := sig.Start(); code != 0 {
		return errors.New("server did not shut down gracefully")
	}
	return nil
}
