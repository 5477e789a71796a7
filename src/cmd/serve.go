package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apimgr/searchconv/src/config"
	"github.com/apimgr/searchconv/src/logging"
	"github.com/apimgr/searchconv/src/server"
)

var (
	serveAddress string
	servePort    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.cfg
		if serveAddress != "" {
			cfg.Server.Address = serveAddress
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := current.serveLogging(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := current.service(ctx)
		if err != nil {
			return err
		}

		checks := map[string]server.Checker{"store": current.store}
		if current.db != nil {
			checks["database"] = current.db
		}

		srv := server.New(cfg.Server, server.Deps{
			Service: svc,
			Prefs:   current.prefs,
			Bangs:   current.bangs,
			History: current.history,
			Checks:  checks,
			Version: Version,
		}, current.logger)

		current.logger.Info("starting server",
			"addr", cfg.Server.Addr(),
			"store", current.store.Backend(),
			"history", current.history != nil)
		return srv.ListenAndServe(ctx)
	},
}

// serveLogging raises the default level to info unless a level was chosen
// by flag, file or environment.
func (a *app) serveLogging() error {
	if logLevel != "" || a.v.InConfig("logging.level") || os.Getenv(config.EnvPrefix+"_LOGGING_LEVEL") != "" {
		return nil
	}
	a.cfg.Logging.Level = "info"
	logger, closer, err := logging.New(a.cfg.Logging)
	if err != nil {
		return err
	}
	if a.logCloser != nil {
		a.logCloser.Close()
	}
	a.logger, a.logCloser = logger, closer
	slog.SetDefault(logger)
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}

