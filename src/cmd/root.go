// Package cmd is the searchconv command line.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/searchconv/src/action"
	"github.com/apimgr/searchconv/src/bangs"
	"github.com/apimgr/searchconv/src/config"
	"github.com/apimgr/searchconv/src/convert"
	"github.com/apimgr/searchconv/src/database"
	"github.com/apimgr/searchconv/src/history"
	"github.com/apimgr/searchconv/src/logging"
	"github.com/apimgr/searchconv/src/preferences"
	"github.com/apimgr/searchconv/src/store"
)

var (
	// Build info - set via -ldflags at build time
	ProjectName = "searchconv"
	Version     = "dev"
	CommitID    = "unknown"
	BuildDate   = "unknown"

	cfgFile  string
	output   string
	noColor  bool
	logLevel string
)

// app holds what a command run needs. Services are opened lazily so pure
// commands never touch the database.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config

	logger    *slog.Logger
	logCloser io.Closer
	out       *printer

	db      *database.DB
	store   store.Store
	prefs   *preferences.Manager
	bangs   *bangs.Manager
	history *history.Store
	svc     *convert.Service
}

var current *app

var rootCmd = &cobra.Command{
	Use:           getBinaryName(),
	Short:         "Carry a search from one engine to another",
	Long:          `searchconv rebuilds search URLs for another engine, runs quick searches and keeps per-user engine preferences.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

// Execute runs the root command and releases whatever it opened.
func Execute() error {
	err := rootCmd.Execute()
	if current != nil {
		if cerr := current.close(); cerr != nil && err == nil {
			err = cerr
		}
		current = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: plain, json, table")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadApp(cmd *cobra.Command) (*app, error) {
	v, path, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, err
	}
	if output != "" {
		v.Set("output.format", output)
	}
	if logLevel != "" {
		v.Set("logging.level", logLevel)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return &app{
		v:         v,
		cfgPath:   path,
		cfg:       cfg,
		logger:    logger,
		logCloser: closer,
		out:       newPrinter(cmd.OutOrStdout(), cfg.Output.Format, cfg.Output.Color, noColor),
	}, nil
}

// service opens the database, store and history as configured and returns
// the conversion service.
func (a *app) service(ctx context.Context) (*convert.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	if a.cfg.NeedsDatabase() {
		db, err := database.OpenAndMigrate(ctx, &a.cfg.Database)
		if err != nil {
			return nil, err
		}
		a.db = db
	}

	s, err := store.New(ctx, &a.cfg.Store, a.db)
	if err != nil {
		return nil, err
	}
	a.store = s
	a.prefs = preferences.NewManager(s, a.logger)

	a.bangs = bangs.NewManager()
	for _, shortcut := range a.bangs.SetCustomBangs(a.cfg.Bangs) {
		a.logger.Warn("custom bang ignored", "shortcut", shortcut)
	}

	opts := []convert.Option{
		convert.WithBangs(a.bangs),
		convert.WithLogger(a.logger),
		convert.WithDispatcher(action.NewDispatcher(a.out.w)),
	}
	if a.cfg.History.Enabled && a.db != nil {
		a.history = history.New(a.db)
		opts = append(opts, convert.WithHistory(a.history))
	}

	a.svc = convert.New(a.prefs, opts...)
	return a.svc, nil
}

func (a *app) close() error {
	var firstErr error
	if a.store != nil {
		if err := a.store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.logCloser != nil {
		a.logCloser.Close()
	}
	return firstErr
}

func getBinaryName() string {
	return filepath.Base(os.Args[0])
}
