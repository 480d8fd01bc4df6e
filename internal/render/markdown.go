package render

import (
	"fmt"
	"io"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/aatrey56/fpl-monthly-standings/internal/summary"
)

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// MarkdownString converts the HTML page (minus the chart) to Markdown so
// both outputs come from one template.
func MarkdownString(d summary.Dashboard) (string, error) {
	page, err := htmlNoChart(d)
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	md, err := mdConverter.ConvertString(page)
	if err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return md + "\n", nil
}

func Markdown(w io.Writer, d summary.Dashboard) error {
	md, err := MarkdownString(d)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, md)
	return err
}
