// Package render writes a summary.Dashboard as text, HTML, Markdown or JSON.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formats accepted by Write.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatHTML     = "html"
)

// Write renders d in the named format.
func Write(w io.Writer, format string, d summary.Dashboard) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return Text(w, d)
	case FormatMarkdown, "md":
		return Markdown(w, d)
	case FormatJSON:
		return JSON(w, d)
	case FormatHTML:
		return HTML(w, d)
	default:
		return fmt.Errorf("unknown format %q (want text|markdown|json|html)", format)
	}
}

func JSON(w io.Writer, d summary.Dashboard) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Text writes a plain terminal report.
func Text(w io.Writer, d summary.Dashboard) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", d.Title, strings.Repeat("=", len(d.Title)))
	for _, n := range d.Notices {
		fmt.Fprintf(&b, "! %s\n", n)
	}
	if d.Status != summary.StatusOK {
		fmt.Fprintf(&b, "\nWARNING: %s\n", d.Message)
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("\nWeekly Winners\n")
	for _, win := range d.WeeklyWinners {
		fmt.Fprintf(&b, "  %s: %s (%d points)%s\n", win.Period, win.Manager.Display, win.Points, tieSuffix(win))
	}
	b.WriteString("\nMonthly Winners\n")
	for _, win := range d.MonthlyWinners {
		fmt.Fprintf(&b, "  %s: %s (%d points)%s\n", win.Period, win.Manager.Display, win.Points, tieSuffix(win))
	}
	b.WriteString("\nMonthly Points Table with Totals\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "#\tManager\t%s\t\n", strings.Join(d.Table.Columns(), "\t"))
	for _, row := range d.Table.Rows {
		cells := make([]string, 0, len(row.Months)+1)
		for _, v := range row.Months {
			cells = append(cells, fmt.Sprint(v))
		}
		cells = append(cells, fmt.Sprint(row.Total))
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", row.Rank, row.Manager.Display, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func tieSuffix(w summary.Winner) string {
	if len(w.Tied) < 2 {
		return ""
	}
	return fmt.Sprintf(" [tied: %d managers]", len(w.Tied))
}
