package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.D.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.warning { background: #fff4e5; border: 1px solid #f0a020; padding: 0.75rem; }
.notice { color: #8a5a00; }
</style>
</head>
<body>
<h1>{{.D.Title}}</h1>
{{- if .D.Notices}}
<ul class="notices">
{{- range .D.Notices}}
<li class="notice">{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if ne .D.Status "ok"}}
<p class="warning" data-status="{{.D.Status}}">{{.D.Message}}</p>
{{- else}}
<h2>Weekly Winners</h2>
<ul class="weekly-winners">
{{- range .D.WeeklyWinners}}
<li data-gameweek="{{.Gameweek}}"><strong>{{.Period}}:</strong> {{.Manager.Display}} ({{.Points}} points)</li>
{{- end}}
</ul>
<h2>Monthly Winners</h2>
<ul class="monthly-winners">
{{- range .D.MonthlyWinners}}
<li data-month="{{.Month}}"><strong>{{.Period}}:</strong> {{.Manager.Display}} ({{.Points}} points)</li>
{{- end}}
</ul>
<h2>Monthly Points Table with Totals</h2>
<table class="monthly-table">
<thead>
<tr><th>Manager</th>{{range .D.Table.Columns}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{- range .D.Table.Rows}}
<tr><td>{{.Manager.Display}}</td>{{range .Months}}<td>{{.}}</td>{{end}}<td>{{.Total}}</td></tr>
{{- end}}
</tbody>
</table>
{{- if .Chart}}
<h2>Season Trend</h2>
<div class="chart">{{.Chart}}</div>
{{- end}}
{{- end}}
</body>
</html>
`))

type pageData struct {
	D     summary.Dashboard
	Chart template.HTML
}

// HTML writes the dashboard as a standalone page with the trend chart.
func HTML(w io.Writer, d summary.Dashboard) error {
	return pageTemplate.Execute(w, pageData{D: d, Chart: TrendSVG(d.Trend)})
}

// htmlNoChart renders the page body without the SVG, for text conversions.
func htmlNoChart(d summary.Dashboard) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{D: d}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
