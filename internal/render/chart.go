package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

const (
	chartWidth   = 760
	chartHeight  = 340
	chartPadding = 44
	legendWidth  = 200
)

var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// TrendSVG draws each manager's cumulative points as a polyline. It returns
// an empty string when there is nothing to plot.
func TrendSVG(trend summary.Trend) template.HTML {
	if len(trend.Gameweeks) == 0 || len(trend.Series) == 0 {
		return ""
	}
	plotW := float64(chartWidth - 2*chartPadding - legendWidth)
	plotH := float64(chartHeight - 2*chartPadding)
	maxY := trend.Max()
	if maxY <= 0 {
		maxY = 1
	}
	x := func(i int) float64 {
		if len(trend.Gameweeks) == 1 {
			return chartPadding + plotW/2
		}
		return chartPadding + plotW*float64(i)/float64(len(trend.Gameweeks)-1)
	}
	y := func(v int) float64 {
		if v < 0 {
			v = 0
		}
		return chartPadding + plotH - plotH*float64(v)/float64(maxY)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" class="trend" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="Cumulative points by gameweek">`,
		chartWidth, chartHeight, chartWidth, chartHeight)
	// axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
		chartPadding, chartHeight-chartPadding, chartWidth-chartPadding-legendWidth, chartHeight-chartPadding)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
		chartPadding, chartPadding, chartPadding, chartHeight-chartPadding)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" text-anchor="end">%d</text>`, chartPadding-4, chartPadding+4, maxY)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11" text-anchor="end">0</text>`, chartPadding-4, chartHeight-chartPadding)
	fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%s</text>`, x(0), chartHeight-chartPadding+16, trend.Gameweeks[0])
	last := len(trend.Gameweeks) - 1
	if last > 0 {
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%s</text>`, x(last), chartHeight-chartPadding+16, trend.Gameweeks[last])
	}

	for i, s := range trend.Series {
		color := palette[i%len(palette)]
		pts := make([]string, 0, len(s.Cumulative))
		for j, v := range s.Cumulative {
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x(j), y(v)))
		}
		name := template.HTMLEscapeString(s.Manager.Display)
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"><title>%s</title></polyline>`,
			color, strings.Join(pts, " "), name)

		ly := chartPadding + i*16
		lx := chartWidth - legendWidth - chartPadding/2
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="10" height="10" fill="%s"/>`, lx, ly, color)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="11">%s</text>`, lx+14, ly+9, name)
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
