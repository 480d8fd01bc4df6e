// Package summary ranks and shapes aggregated score tables for display.
package summary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aatrey56/fpl-monthly-standings/internal/points"
)

const DefaultTitle = "FPL League Standings"

type Status string

const (
	StatusOK                  Status = "ok"
	StatusUpstreamUnavailable Status = "upstream_unavailable"
	StatusNoManagers          Status = "no_managers"
)

// Dashboard is the full presentation model of one run. Only StatusOK
// dashboards carry winners and tables.
type Dashboard struct {
	Title          string   `json:"title"`
	LeagueID       int      `json:"league_id"`
	RunID          string   `json:"run_id,omitempty"`
	Status         Status   `json:"status"`
	Message        string   `json:"message,omitempty"`
	Notices        []string `json:"notices,omitempty"`
	WeeklyWinners  []Winner `json:"weekly_winners,omitempty"`
	MonthlyWinners []Winner `json:"monthly_winners,omitempty"`
	Table          Table    `json:"table"`
	Trend          Trend    `json:"trend"`
	GeneratedAtUTC string   `json:"generated_at_utc"`
}

// ResolveTitle picks the configured title, then "<league> Standings", then
// DefaultTitle.
func ResolveTitle(configured string, leagueName string) string {
	if s := strings.TrimSpace(configured); s != "" {
		return s
	}
	if s := strings.TrimSpace(leagueName); s != "" {
		return s + " Standings"
	}
	return DefaultTitle
}

// BuildDashboard turns the outcome of points.Run into a Dashboard.
func BuildDashboard(title string, leagueID int, res *points.Result, runErr error) Dashboard {
	d := Dashboard{
		LeagueID:       leagueID,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
	}

	if runErr != nil || res == nil {
		d.Title = ResolveTitle(title, "")
		d.Status = StatusUpstreamUnavailable
		d.Message = "Failed to fetch league data. Please try again later."
		if runErr != nil && !errors.Is(runErr, points.ErrUpstreamUnavailable) {
			d.Notices = append(d.Notices, runErr.Error())
		}
		return d
	}

	d.Title = ResolveTitle(title, res.LeagueName)
	d.RunID = res.RunID
	if !res.CalendarAvailable {
		d.Notices = append(d.Notices, "Fixture calendar unavailable; all gameweeks are grouped under Unknown.")
	}
	for _, m := range res.Missing {
		d.Notices = append(d.Notices, fmt.Sprintf("History unavailable for %s; excluded from tables.", m.Identity.Display))
	}

	if res.NoManagers() {
		d.Status = StatusNoManagers
		d.Message = "No managers found in this league."
		return d
	}
	if res.Tables.Empty() {
		d.Status = StatusNoManagers
		d.Message = "No manager history available for this league."
		return d
	}

	d.Status = StatusOK
	d.WeeklyWinners = WeeklyWinners(res.Tables)
	d.MonthlyWinners = MonthlyWinners(res.Tables)
	d.Table = CombinedTable(res.Tables)
	d.Trend = CumulativeTrend(res.Tables)
	return d
}
