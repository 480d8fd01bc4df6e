package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aatrey56/fpl-monthly-standings/internal/fetch"
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/points"
	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

type ServerConfig struct {
	Client   *fetch.Client
	LeagueID int
	Mode     model.IdentityMode
	Title    string
	Log      logrus.FieldLogger
}

type DashboardArgs struct {
	LeagueID int    `json:"league_id,omitempty" jsonschema:"Classic league id (0 = server default)"`
	Mode     string `json:"mode,omitempty" jsonschema:"Manager identity: name|team (default server setting)"`
	Title    string `json:"title,omitempty" jsonschema:"Dashboard title override"`
}

type LeagueDashboardArgs struct {
	LeagueID int    `json:"league_id,omitempty" jsonschema:"Classic league id (0 = server default)"`
	Mode     string `json:"mode,omitempty" jsonschema:"Manager identity: name|team (default server setting)"`
	Title    string `json:"title,omitempty" jsonschema:"Dashboard title override"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: json|markdown (default json)"`
}

func (a LeagueDashboardArgs) dashboardArgs() DashboardArgs {
	return DashboardArgs{LeagueID: a.LeagueID, Mode: a.Mode, Title: a.Title}
}

// resolveArgs fills zero-valued args from the server defaults.
func resolveArgs(cfg ServerConfig, args DashboardArgs) (int, model.IdentityMode, string, error) {
	leagueID := args.LeagueID
	if leagueID == 0 {
		leagueID = cfg.LeagueID
	}
	if leagueID <= 0 {
		return 0, "", "", fmt.Errorf("league_id is required")
	}
	mode := cfg.Mode
	if strings.TrimSpace(args.Mode) != "" {
		m, err := model.ParseIdentityMode(args.Mode)
		if err != nil {
			return 0, "", "", err
		}
		mode = m
	}
	title := cfg.Title
	if strings.TrimSpace(args.Title) != "" {
		title = args.Title
	}
	return leagueID, mode, title, nil
}

// buildDashboard runs one aggregation with a fresh request cache. Upstream
// failures come back as a dashboard in the warning state, not as an error.
func buildDashboard(ctx context.Context, cfg ServerConfig, args DashboardArgs) (summary.Dashboard, error) {
	leagueID, mode, title, err := resolveArgs(cfg, args)
	if err != nil {
		return summary.Dashboard{}, err
	}
	client := cfg.Client.ForRun()
	res, runErr := points.Run(ctx, client, leagueID, mode, cfg.Log)
	d := summary.BuildDashboard(title, leagueID, res, runErr)

	entries, hits, misses := client.Cache.Stats()
	cfg.Log.WithFields(logrus.Fields{
		"league_id":    leagueID,
		"status":       d.Status,
		"run_id":       d.RunID,
		"cache_paths":  entries,
		"cache_hits":   hits,
		"cache_misses": misses,
	}).Info("dashboard built")
	return d, nil
}

type WinnersOutput struct {
	LeagueID int              `json:"league_id"`
	Title    string           `json:"title"`
	Status   summary.Status   `json:"status"`
	Message  string           `json:"message,omitempty"`
	Notices  []string         `json:"notices,omitempty"`
	Winners  []summary.Winner `json:"winners"`
}

func buildWeeklyWinners(ctx context.Context, cfg ServerConfig, args DashboardArgs) (WinnersOutput, error) {
	d, err := buildDashboard(ctx, cfg, args)
	if err != nil {
		return WinnersOutput{}, err
	}
	return winnersOutput(d, d.WeeklyWinners), nil
}

func buildMonthlyWinners(ctx context.Context, cfg ServerConfig, args DashboardArgs) (WinnersOutput, error) {
	d, err := buildDashboard(ctx, cfg, args)
	if err != nil {
		return WinnersOutput{}, err
	}
	return winnersOutput(d, d.MonthlyWinners), nil
}

func winnersOutput(d summary.Dashboard, winners []summary.Winner) WinnersOutput {
	if winners == nil {
		winners = []summary.Winner{}
	}
	return WinnersOutput{
		LeagueID: d.LeagueID,
		Title:    d.Title,
		Status:   d.Status,
		Message:  d.Message,
		Notices:  d.Notices,
		Winners:  winners,
	}
}

type MonthlyTableOutput struct {
	LeagueID int                `json:"league_id"`
	Title    string             `json:"title"`
	Status   summary.Status     `json:"status"`
	Message  string             `json:"message,omitempty"`
	Notices  []string           `json:"notices,omitempty"`
	Columns  []string           `json:"columns"`
	Rows     []summary.TableRow `json:"rows"`
}

func buildMonthlyTable(ctx context.Context, cfg ServerConfig, args DashboardArgs) (MonthlyTableOutput, error) {
	d, err := buildDashboard(ctx, cfg, args)
	if err != nil {
		return MonthlyTableOutput{}, err
	}
	rows := d.Table.Rows
	if rows == nil {
		rows = []summary.TableRow{}
	}
	return MonthlyTableOutput{
		LeagueID: d.LeagueID,
		Title:    d.Title,
		Status:   d.Status,
		Message:  d.Message,
		Notices:  d.Notices,
		Columns:  d.Table.Columns(),
		Rows:     rows,
	}, nil
}
