package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aatrey56/fpl-monthly-standings/internal/render"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newMCPServer(cfg ServerConfig) (*mcp.Server, []toolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-monthly-standings",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 4)

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_dashboard",
		Description: "Weekly winners, monthly winners and the monthly points table for a classic league",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueDashboardArgs) (*mcp.CallToolResult, any, error) {
		d, err := buildDashboard(ctx, cfg, args.dashboardArgs())
		if err != nil {
			return toolError(err), nil, nil
		}
		switch strings.ToLower(strings.TrimSpace(args.Format)) {
		case "", render.FormatJSON:
			b, _ := json.MarshalIndent(d, "", "  ")
			return toolJSONBytes(b), nil, nil
		case render.FormatMarkdown, "md":
			md, err := render.MarkdownString(d)
			if err != nil {
				return toolError(err), nil, nil
			}
			return toolJSONBytes([]byte(md)), nil, nil
		default:
			return toolError(fmt.Errorf("unknown format %q (want json|markdown)", args.Format)), nil, nil
		}
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "weekly_winners",
		Description: "Top scorer of every gameweek (ties go to the earlier manager in league order)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DashboardArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildWeeklyWinners(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "monthly_winners",
		Description: "Top scorer of every calendar month, months in season order",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DashboardArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMonthlyWinners(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "monthly_table",
		Description: "Points per manager per month with season totals, sorted by total",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DashboardArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMonthlyTable(ctx, cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		return toolJSONBytes(b), nil, nil
	})

	return server, registry
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
