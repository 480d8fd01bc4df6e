package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatrey56/fpl-monthly-standings/internal/calendar"
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/points"
	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	alice = model.Manager{EntryID: 1, PlayerName: "Alice", TeamName: "Alpha FC"}
	bob   = model.Manager{EntryID: 2, PlayerName: "Bob", TeamName: "Beta United"}
)

func okDashboard() summary.Dashboard {
	cal := calendar.Calendar{1: "August", 2: "August", 3: "September"}
	tables := points.Aggregate(cal, []points.ManagerHistory{
		{Manager: alice, Events: []model.GameweekPoints{{Gameweek: 1, Points: 50}, {Gameweek: 2, Points: 50}, {Gameweek: 3, Points: 30}}},
		{Manager: bob, Events: []model.GameweekPoints{{Gameweek: 1, Points: 70}, {Gameweek: 2, Points: 40}, {Gameweek: 3, Points: 45}}},
	}, model.IdentityName)
	res := &points.Result{
		RunID:             "run-1",
		LeagueID:          42,
		LeagueName:        "Test League",
		Mode:              model.IdentityName,
		Roster:            []model.Manager{alice, bob},
		CalendarAvailable: true,
		Calendar:          cal,
		Tables:            tables,
	}
	return summary.BuildDashboard("", 42, res, nil)
}

func failedDashboard() summary.Dashboard {
	return summary.BuildDashboard("", 42, nil, points.ErrUpstreamUnavailable)
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// ---------------------------------------------------------------------------
// HTML
// ---------------------------------------------------------------------------

func TestHTML_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, okDashboard()))
	doc := parse(t, buf.String())

	assert.Equal(t, "Test League Standings", doc.Find("h1").Text())
	assert.Equal(t, 3, doc.Find("ul.weekly-winners li").Length())
	assert.Equal(t, 2, doc.Find("ul.monthly-winners li").Length())
	assert.Contains(t, doc.Find("ul.weekly-winners li").First().Text(), "Bob (70 points)")

	var headers []string
	doc.Find("table.monthly-table thead th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	assert.Equal(t, []string{"Manager", "August", "September", "Total Points"}, headers)

	firstRow := doc.Find("table.monthly-table tbody tr").First().Find("td")
	assert.Equal(t, "Bob", firstRow.Eq(0).Text())
	assert.Equal(t, "155", firstRow.Last().Text())

	assert.Equal(t, 2, doc.Find("svg.trend polyline").Length())
	assert.Equal(t, 0, doc.Find("p.warning").Length())
}

func TestHTML_UpstreamFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, failedDashboard()))
	doc := parse(t, buf.String())

	warn := doc.Find("p.warning")
	require.Equal(t, 1, warn.Length())
	status, _ := warn.Attr("data-status")
	assert.Equal(t, "upstream_unavailable", status)
	assert.Equal(t, "Failed to fetch league data. Please try again later.", warn.Text())
	assert.Equal(t, 0, doc.Find("table").Length())
	assert.Equal(t, 0, doc.Find("svg").Length())
}

func TestHTML_EscapesManagerNames(t *testing.T) {
	d := okDashboard()
	d.Table.Rows[0].Manager.Display = "<script>x</script>"
	d.Trend.Series[0].Manager.Display = "<b>y</b>"

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, d))
	assert.NotContains(t, buf.String(), "<script>x</script>")
	assert.NotContains(t, buf.String(), "<b>y</b>")
}

func TestHTML_Notices(t *testing.T) {
	d := okDashboard()
	d.Notices = []string{"History unavailable for Cara; excluded from tables."}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, d))
	doc := parse(t, buf.String())
	assert.Equal(t, "History unavailable for Cara; excluded from tables.", doc.Find("li.notice").Text())
}

// ---------------------------------------------------------------------------
// Chart
// ---------------------------------------------------------------------------

func TestTrendSVG_EmptyTrend(t *testing.T) {
	assert.Empty(t, string(TrendSVG(summary.Trend{})))
}

func TestTrendSVG_SingleGameweek(t *testing.T) {
	svg := TrendSVG(summary.Trend{
		Gameweeks: []model.GameweekID{1},
		Series: []summary.TrendSeries{
			{Manager: alice.Identity(model.IdentityName), Cumulative: []int{0}},
		},
	})
	doc := parse(t, string(svg))
	assert.Equal(t, 1, doc.Find("polyline").Length())
	assert.Contains(t, string(svg), "GW1")
}

// ---------------------------------------------------------------------------
// Markdown, JSON, text
// ---------------------------------------------------------------------------

func TestMarkdown_ContainsSections(t *testing.T) {
	md, err := MarkdownString(okDashboard())
	require.NoError(t, err)

	assert.Contains(t, md, "# Test League Standings")
	assert.Contains(t, md, "Weekly Winners")
	assert.Contains(t, md, "Monthly Winners")
	assert.Contains(t, md, "Total Points")
	assert.Contains(t, md, "Bob (70 points)")
	assert.NotContains(t, md, "<svg")
}

func TestMarkdown_UpstreamFailure(t *testing.T) {
	md, err := MarkdownString(failedDashboard())
	require.NoError(t, err)
	assert.Contains(t, md, "Failed to fetch league data. Please try again later.")
	assert.NotContains(t, md, "Weekly Winners")
}

func TestJSON_Status(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, failedDashboard()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "upstream_unavailable", got["status"])
	assert.EqualValues(t, 42, got["league_id"])
}

func TestText_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, okDashboard()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Test League Standings\n====="))
	assert.Contains(t, out, "GW1: Bob (70 points)")
	assert.Contains(t, out, "August: Bob (110 points)")
	assert.Contains(t, out, "Total Points")
}

func TestText_Warning(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, failedDashboard()))
	assert.Contains(t, buf.String(), "WARNING: Failed to fetch league data.")
	assert.NotContains(t, buf.String(), "Weekly Winners")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "pdf", okDashboard())
	require.Error(t, err)
	assert.False(t, errors.Is(err, points.ErrUpstreamUnavailable))
	assert.Contains(t, err.Error(), "pdf")
}
