package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

// routes serves fixed bodies keyed by request URI.
func routes(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.RequestURI()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// LeagueStandings
// ---------------------------------------------------------------------------

func TestLeagueStandings_SinglePage(t *testing.T) {
	srv := routes(t, map[string]string{
		"/leagues-classic/610588/standings/": `{
			"league": {"id": 610588, "name": "P4Fun"},
			"standings": {"has_next": false, "page": 1, "results": [
				{"entry": 1, "player_name": "Alice", "entry_name": "Alpha FC", "rank": 1},
				{"entry": 2, "player_name": "Bob", "entry_name": "Beta United", "rank": 2}
			]}}`,
	})

	league, err := newTestClient(t, srv).LeagueStandings(context.Background(), 610588)
	require.NoError(t, err)
	assert.Equal(t, "P4Fun", league.Name)
	assert.Equal(t, []model.Manager{
		{EntryID: 1, PlayerName: "Alice", TeamName: "Alpha FC"},
		{EntryID: 2, PlayerName: "Bob", TeamName: "Beta United"},
	}, league.Managers)
}

func TestLeagueStandings_FollowsPagesAndDedupes(t *testing.T) {
	srv := routes(t, map[string]string{
		"/leagues-classic/5/standings/": `{"standings": {"has_next": true, "results": [
			{"entry": 1, "player_name": "Alice", "entry_name": "Alpha FC"},
			{"entry": 2, "player_name": "Bob", "entry_name": "Beta United"}]}}`,
		"/leagues-classic/5/standings/?page_standings=2": `{"standings": {"has_next": false, "results": [
			{"entry": 2, "player_name": "Bob", "entry_name": "Beta United"},
			{"entry": 3, "player_name": "Cara", "entry_name": "Gamma Town"}]}}`,
	})

	league, err := newTestClient(t, srv).LeagueStandings(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, league.Managers, 3)
	assert.Equal(t, 3, league.Managers[2].EntryID)
}

func TestLeagueStandings_PageCap(t *testing.T) {
	srv := routes(t, map[string]string{
		"/leagues-classic/5/standings/": `{"standings": {"has_next": true, "results": [
			{"entry": 1, "player_name": "Alice", "entry_name": "Alpha FC"}]}}`,
	})
	c := newTestClient(t, srv)
	c.MaxStandingsPages = 1

	league, err := c.LeagueStandings(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, league.Managers, 1)
}

func TestLeagueStandings_Defaults(t *testing.T) {
	srv := routes(t, map[string]string{
		"/leagues-classic/5/standings/": `{"standings": {"results": [
			{"entry": 4},
			{"player_name": "Ghost", "entry_name": "No Id"}]}}`,
	})

	league, err := newTestClient(t, srv).LeagueStandings(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []model.Manager{{EntryID: 4, PlayerName: "Unknown", TeamName: "Unknown Team"}}, league.Managers)
	assert.Equal(t, 1, league.Skipped)
}

func TestLeagueStandings_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"MissingStandings", `{"league": {"name": "x"}}`, ErrMalformed},
		{"MissingResults", `{"standings": {"has_next": false}}`, ErrMalformed},
		{"WrongType", `{"standings": {"results": [{"entry": "one"}]}}`, ErrMalformed},
		{"NotJSON", `<html>`, ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := routes(t, map[string]string{"/leagues-classic/5/standings/": tc.body})
			_, err := newTestClient(t, srv).LeagueStandings(context.Background(), 5)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestLeagueStandings_StatusFailure(t *testing.T) {
	srv := routes(t, map[string]string{})
	_, err := newTestClient(t, srv).LeagueStandings(context.Background(), 5)
	assert.ErrorIs(t, err, ErrStatus)
}

// ---------------------------------------------------------------------------
// EntryHistory
// ---------------------------------------------------------------------------

func TestEntryHistory(t *testing.T) {
	srv := routes(t, map[string]string{
		"/entry/1/history/": `{"current": [
			{"event": 1, "points": 50},
			{"event": 2},
			{"points": 99},
			{"event": 3, "points": 61}
		], "past": []}`,
	})

	got, err := newTestClient(t, srv).EntryHistory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []model.GameweekPoints{
		{Gameweek: 1, Points: 50},
		{Gameweek: 2, Points: 0},
		{Gameweek: 3, Points: 61},
	}, got)
}

func TestEntryHistory_MissingCurrent(t *testing.T) {
	srv := routes(t, map[string]string{"/entry/1/history/": `{"past": []}`})
	_, err := newTestClient(t, srv).EntryHistory(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEntryHistory_NotFound(t *testing.T) {
	srv := routes(t, map[string]string{})
	_, err := newTestClient(t, srv).EntryHistory(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStatus)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func TestFixtures(t *testing.T) {
	srv := routes(t, map[string]string{
		"/fixtures/": `[
			{"id": 1, "event": 1, "kickoff_time": "2024-08-16T19:00:00Z"},
			{"id": 2, "event": null, "kickoff_time": null}
		]`,
	})

	got, err := newTestClient(t, srv).Fixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Event)
	assert.Equal(t, model.GameweekID(1), *got[0].Event)
	require.NotNil(t, got[0].KickoffTime)
	assert.Equal(t, "2024-08-16T19:00:00Z", *got[0].KickoffTime)
	assert.Nil(t, got[1].Event)
	assert.Nil(t, got[1].KickoffTime)
}

func TestFixtures_NotAnArray(t *testing.T) {
	srv := routes(t, map[string]string{"/fixtures/": `{"detail": "nope"}`})
	_, err := newTestClient(t, srv).Fixtures(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
}
