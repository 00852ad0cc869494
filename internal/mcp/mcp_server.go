// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/archive"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the sprintlens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store *archive.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"Sprint Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_progress_series ---
	s.AddTool(mcp.NewTool("get_progress_series",
		mcp.WithDescription("Compute the daily burndown or burnup series for a sprint export."),
		mcp.WithString("sprint_path", mcp.Description("Path to the sprint export file, or an archived sprint id when from_archive is set."), mcp.Required()),
		mcp.WithString("mode", mcp.Description("Counting mode (issues, points). Defaults to 'issues'."), mcp.Enum("issues", "points")),
		mcp.WithString("chart", mcp.Description("Chart mode (burndown, burnup). Defaults to 'burndown'."), mcp.Enum("burndown", "burnup")),
		mcp.WithString("today", mcp.Description("Reference date in YYYY-MM-DD form (defaults to the current date).")),
		mcp.WithBoolean("from_archive", mcp.Description("Resolve sprint_path against the archive instead of disk.")),
	), h.handleGetProgressSeries)

	// --- 2. Tool: get_progress_percentage ---
	s.AddTool(mcp.NewTool("get_progress_percentage",
		mcp.WithDescription("Compute the clamped completion percentage for a sprint export."),
		mcp.WithString("sprint_path", mcp.Description("Path to the sprint export file, or an archived sprint id when from_archive is set."), mcp.Required()),
		mcp.WithString("mode", mcp.Description("Counting mode (issues, points)."), mcp.Enum("issues", "points")),
		mcp.WithBoolean("include_started", mcp.Description("Count in-progress work as complete.")),
		mcp.WithBoolean("from_archive", mcp.Description("Resolve sprint_path against the archive instead of disk.")),
	), h.handleGetProgressPercentage)

	// --- 3. Tool: get_sprint_summary ---
	s.AddTool(mcp.NewTool("get_sprint_summary",
		mcp.WithDescription("Compute the pace report for a sprint: percentage, remaining work and required pace."),
		mcp.WithString("sprint_path", mcp.Description("Path to the sprint export file, or an archived sprint id when from_archive is set."), mcp.Required()),
		mcp.WithString("mode", mcp.Description("Counting mode (issues, points)."), mcp.Enum("issues", "points")),
		mcp.WithString("today", mcp.Description("Reference date in YYYY-MM-DD form (defaults to the current date).")),
		mcp.WithBoolean("from_archive", mcp.Description("Resolve sprint_path against the archive instead of disk.")),
	), h.handleGetSprintSummary)

	// --- 4. Tool: list_archived_sprints ---
	s.AddTool(mcp.NewTool("list_archived_sprints",
		mcp.WithDescription("List sprints stored in the archive, most recently imported first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleListArchivedSprints)

	return s
}

// StartMCPServer starts the sprintlens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store *archive.Store) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
