package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"recyclehub/internal/config"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/notify"
	"recyclehub/internal/store"
	"recyclehub/pkg/logger"
)

// app holds what every command needs, built once flags are parsed.
type app struct {
	store *store.Store
	feed  *notify.Feed
	log   *logger.Logger
}

type rootFlags struct {
	envFile string
	apiURL  string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     = &app{}
	)

	root := &cobra.Command{
		Use:           "recyclectl",
		Short:         "Inspect and seed the recycling backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file to load")
	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "backend base URL (overrides API_URL)")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout (overrides API_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newSummaryCmd(a),
		newByDateCmd(a),
		newStatusCmd(a),
		newSeedCmd(a),
		newExportCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return err
	}
	if flags.apiURL != "" {
		cfg.APIURL = flags.apiURL
	}
	if flags.timeout > 0 {
		cfg.APITimeout = flags.timeout
	}

	a.log = logger.Nop()
	if flags.verbose {
		if a.log, err = logger.New(logger.Config{
			Level:       "debug",
			Development: true,
			OutputPaths: []string{"stderr"},
		}); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}

	a.feed = notify.NewFeed(cfg.NotificationBuffer)
	a.store = store.New(store.Config{
		API:      api.NewClient(api.Config{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout}, a.log),
		Notifier: a.feed,
		Logger:   a.log,
	})
	return nil
}

// load fills the store and prints the failed loads as warnings.
func (a *app) load(ctx context.Context, w io.Writer) {
	a.store.Init(ctx)
	a.warnings(w)
}

// warnings prints error notifications not shown yet.
func (a *app) warnings(w io.Writer) {
	for _, n := range a.feed.List() {
		if n.Level == notify.LevelError {
			fmt.Fprintln(w, "warning:", n.Message)
		}
	}
}
