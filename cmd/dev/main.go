// Command dev runs a one-off standings report against the FPL API.
//
// Usage:
//
//	dev report --league 610588 --mode team --format text
//	dev report --format html > standings.html
//	dev fetch /entry/123/history/
//	dev schema --league 610588 --depth 4
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aatrey56/fpl-monthly-standings/internal/config"
	"github.com/aatrey56/fpl-monthly-standings/internal/fetch"
	"github.com/aatrey56/fpl-monthly-standings/internal/logger"
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/points"
	"github.com/aatrey56/fpl-monthly-standings/internal/render"
	"github.com/aatrey56/fpl-monthly-standings/internal/store"
	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	baseURL   string
	rps       float64
	logLevel  string
	logFormat string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions
	root := &cobra.Command{
		Use:          "dev",
		Short:        "FPL classic league standings tools",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "FPL API base URL (default from FPL_BASE_URL)")
	root.PersistentFlags().Float64Var(&opts.rps, "rps", -1, "max upstream requests per second (default from FPL_REQUESTS_PER_SECOND)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (default from LOG_LEVEL)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format text|json (default from LOG_FORMAT)")

	root.AddCommand(reportCmd(&opts, stdout, stderr))
	root.AddCommand(fetchCmd(&opts, stdout, stderr))
	root.AddCommand(schemaCmd(&opts, stdout, stderr))
	return root
}

// setup merges flags over the env config and builds the upstream client.
func setup(opts *rootOptions, stderr io.Writer) (*config.Config, *fetch.Client, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.rps >= 0 {
		cfg.RequestsPerSecond = opts.rps
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}

	log := logger.NewWithOutput(stderr, cfg.LogLevel, cfg.LogFormat)
	client := fetch.NewClient(store.NewRunCache())
	client.BaseURL = cfg.BaseURL
	client.UserAgent = cfg.UserAgent
	client.HTTP.Timeout = cfg.HTTPTimeout
	client.MaxStandingsPages = cfg.MaxStandingsPages
	client.Log = log
	client.SetRate(cfg.RequestsPerSecond)
	return cfg, client, log, nil
}

// --------------------------------------------------------------------------
// report command
// --------------------------------------------------------------------------

func reportCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		leagueID int
		mode     string
		format   string
		title    string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate a league and print weekly/monthly winners and the monthly table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, log, err := setup(opts, stderr)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("league") {
				cfg.LeagueID = leagueID
			}
			if cfg.LeagueID <= 0 {
				return fmt.Errorf("league id must be positive, got %d", cfg.LeagueID)
			}
			if mode != "" {
				m, err := model.ParseIdentityMode(mode)
				if err != nil {
					return err
				}
				cfg.IdentityMode = m
			}
			if title != "" {
				cfg.Title = title
			}
			switch format {
			case render.FormatText, render.FormatMarkdown, render.FormatJSON, render.FormatHTML:
			default:
				return fmt.Errorf("unknown format %q (want text|markdown|json|html)", format)
			}

			// An upstream failure renders as the warning state; it is not a
			// command error.
			res, runErr := points.Run(cmd.Context(), client, cfg.LeagueID, cfg.IdentityMode, log)
			d := summary.BuildDashboard(cfg.Title, cfg.LeagueID, res, runErr)
			return render.Write(stdout, format, d)
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", config.DefaultLeagueID, "classic league id (default from FPL_LEAGUE_ID)")
	cmd.Flags().StringVar(&mode, "mode", "", "manager identity name|team (default from FPL_IDENTITY_MODE)")
	cmd.Flags().StringVar(&format, "format", render.FormatText, "output format text|markdown|json|html")
	cmd.Flags().StringVar(&title, "title", "", "dashboard title (default from DASHBOARD_TITLE)")
	return cmd
}

// --------------------------------------------------------------------------
// fetch command
// --------------------------------------------------------------------------

func fetchCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <path>",
		Short: "GET one upstream path (e.g. /fixtures/) and print the decoded body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := setup(opts, stderr)
			if err != nil {
				return err
			}
			body, err := client.FetchRaw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, string(body))
			return err
		},
	}
}
