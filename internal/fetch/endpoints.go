package fetch

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// League is the roster of a classic league, in standings order.
type League struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Managers []model.Manager `json:"managers"`
	// Skipped counts standings rows without an entry id.
	Skipped int `json:"skipped"`
}

type standingsResponse struct {
	League *struct {
		Name string `json:"name"`
	} `json:"league"`
	Standings *struct {
		HasNext bool           `json:"has_next"`
		Results *[]standingRow `json:"results"`
	} `json:"standings"`
}

type standingRow struct {
	Entry      *int    `json:"entry"`
	PlayerName *string `json:"player_name"`
	EntryName  *string `json:"entry_name"`
}

type historyResponse struct {
	Current *[]historyRow `json:"current"`
}

type historyRow struct {
	Event  *int `json:"event"`
	Points *int `json:"points"`
}

// /leagues-classic/{league_id}/standings/
func standingsPath(leagueID int, page int) string {
	if page <= 1 {
		return fmt.Sprintf("/leagues-classic/%d/standings/", leagueID)
	}
	return fmt.Sprintf("/leagues-classic/%d/standings/?page_standings=%d", leagueID, page)
}

// LeagueStandings walks the standings pages of a classic league and returns
// its managers. Any failed or malformed page fails the whole roster.
func (c *Client) LeagueStandings(ctx context.Context, leagueID int) (*League, error) {
	maxPages := c.MaxStandingsPages
	if maxPages <= 0 {
		maxPages = 1
	}
	out := &League{ID: leagueID}
	seen := make(map[int]bool)

	for page := 1; page <= maxPages; page++ {
		raw, err := c.FetchRaw(ctx, standingsPath(leagueID, page))
		if err != nil {
			return nil, err
		}
		var resp standingsResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("league %d standings page %d: %v: %w", leagueID, page, err, ErrMalformed)
		}
		if resp.Standings == nil || resp.Standings.Results == nil {
			return nil, fmt.Errorf("league %d standings page %d: missing standings.results: %w", leagueID, page, ErrMalformed)
		}
		if resp.League != nil && out.Name == "" {
			out.Name = resp.League.Name
		}
		for _, row := range *resp.Standings.Results {
			if row.Entry == nil || *row.Entry <= 0 {
				out.Skipped++
				continue
			}
			// Rows can shift between pages while standings update.
			if seen[*row.Entry] {
				continue
			}
			seen[*row.Entry] = true
			out.Managers = append(out.Managers, model.Manager{
				EntryID:    *row.Entry,
				PlayerName: stringOr(row.PlayerName, "Unknown"),
				TeamName:   stringOr(row.EntryName, "Unknown Team"),
			})
		}
		if !resp.Standings.HasNext {
			break
		}
		if page == maxPages {
			c.Log.WithField("league_id", leagueID).Warnf("standings truncated at %d pages", maxPages)
		}
	}
	if out.Skipped > 0 {
		c.Log.WithField("league_id", leagueID).Warnf("skipped %d standings rows without entry id", out.Skipped)
	}
	return out, nil
}

// /entry/{entry_id}/history/
func (c *Client) EntryHistory(ctx context.Context, entryID int) ([]model.GameweekPoints, error) {
	raw, err := c.FetchRaw(ctx, fmt.Sprintf("/entry/%d/history/", entryID))
	if err != nil {
		return nil, err
	}
	var resp historyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("entry %d history: %v: %w", entryID, err, ErrMalformed)
	}
	if resp.Current == nil {
		return nil, fmt.Errorf("entry %d history: missing current: %w", entryID, ErrMalformed)
	}
	out := make([]model.GameweekPoints, 0, len(*resp.Current))
	for _, row := range *resp.Current {
		if row.Event == nil || *row.Event <= 0 {
			continue
		}
		pts := 0
		if row.Points != nil {
			pts = *row.Points
		}
		out = append(out, model.GameweekPoints{Gameweek: model.GameweekID(*row.Event), Points: pts})
	}
	return out, nil
}

// /fixtures/
func (c *Client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	raw, err := c.FetchRaw(ctx, "/fixtures/")
	if err != nil {
		return nil, err
	}
	var out []model.Fixture
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("fixtures: %v: %w", err, ErrMalformed)
	}
	return out, nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
