package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/aatrey56/fpl-monthly-standings/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// --------------------------------------------------------------------------
// schema command
// --------------------------------------------------------------------------

func schemaCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		leagueID int
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "schema [path...]",
		Short: "Print the JSON shape of upstream responses (default: fixtures and league standings)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, _, err := setup(opts, stderr)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("league") {
				cfg.LeagueID = leagueID
			}
			paths := args
			if len(paths) == 0 {
				paths = []string{"/fixtures/", fmt.Sprintf("/leagues-classic/%d/standings/", cfg.LeagueID)}
			}
			for _, p := range paths {
				body, err := client.FetchRaw(cmd.Context(), p)
				if err != nil {
					return err
				}
				var v any
				if err := json.Unmarshal(body, &v); err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
				dumpShape(stdout, p, v, maxDepth)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", config.DefaultLeagueID, "classic league id for the default standings path")
	cmd.Flags().IntVar(&maxDepth, "depth", 8, "max depth for the walk")
	return cmd
}

func dumpShape(w io.Writer, title string, v any, maxDepth int) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
	walk(w, v, "$", 0, maxDepth)
}

func walk(w io.Writer, v any, path string, depth, maxDepth int) {
	if depth > maxDepth {
		fmt.Fprintf(w, "%-60s %s\n", path, "(max depth)")
		return
	}

	switch x := v.(type) {
	case map[string]any:
		fmt.Fprintf(w, "%-60s object keys=%d\n", path, len(x))
		keys := lo.Keys(x)
		slices.Sort(keys)
		for _, k := range keys {
			walk(w, x[k], path+"."+k, depth+1, maxDepth)
		}
	case []any:
		fmt.Fprintf(w, "%-60s array len=%d\n", path, len(x))
		if len(x) > 0 {
			walk(w, x[0], path+"[]", depth+1, maxDepth)
		}
	case string:
		fmt.Fprintf(w, "%-60s string\n", path)
	case bool:
		fmt.Fprintf(w, "%-60s bool\n", path)
	case float64:
		fmt.Fprintf(w, "%-60s number\n", path)
	case nil:
		fmt.Fprintf(w, "%-60s null\n", path)
	default:
		fmt.Fprintf(w, "%-60s %T\n", path, v)
	}
}
