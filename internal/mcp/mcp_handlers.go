package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/core"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/archive"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/tracker"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   *archive.Store
}

// resolveRequest applies per-call overrides on top of the base config and
// loads the referenced sprint from disk or from the archive.
func (h *toolHandler) resolveRequest(request mcp.CallToolRequest) (*contract.Config, *schema.Sprint, error) {
	cfg := h.baseCfg.Clone()

	cfg.SprintPath = request.GetString("sprint_path", "")
	if cfg.SprintPath == "" {
		return nil, nil, fmt.Errorf("sprint_path is required")
	}
	cfg.FromArchive = request.GetBool("from_archive", cfg.FromArchive)

	if m := request.GetString("mode", ""); m != "" {
		mode := schema.CountingMode(m)
		if _, ok := schema.ValidCountingModes[mode]; !ok {
			return nil, nil, fmt.Errorf("invalid counting mode %q", m)
		}
		cfg.Mode = mode
	}
	if c := request.GetString("chart", ""); c != "" {
		chart := schema.ChartMode(c)
		if _, ok := schema.ValidChartModes[chart]; !ok {
			return nil, nil, fmt.Errorf("invalid chart mode %q", c)
		}
		cfg.Chart = chart
	}
	if override := request.GetString("today", ""); override != "" {
		today, err := contract.ResolveToday(override, time.Now())
		if err != nil {
			return nil, nil, err
		}
		cfg.Today = today
	}

	var sprint *schema.Sprint
	var err error
	if cfg.FromArchive {
		if h.store == nil || !h.store.Enabled() {
			return nil, nil, fmt.Errorf("archive backend is disabled")
		}
		sprint, err = h.store.GetSprint(cfg.SprintPath)
	} else {
		sprint, err = tracker.LoadSprint(cfg.SprintPath)
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, sprint, nil
}

func (h *toolHandler) handleGetProgressSeries(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, sprint, err := h.resolveRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid series request: %v", err)), nil
	}

	series := core.FormatProgress(sprint, cfg.Chart, cfg.Mode, cfg.Today)

	result := struct {
		SprintID string                 `json:"sprint_id"`
		Name     string                 `json:"name"`
		Mode     schema.CountingMode    `json:"mode"`
		Chart    schema.ChartMode       `json:"chart"`
		Today    string                 `json:"today"`
		Points   []schema.ProgressPoint `json:"points"`
	}{
		SprintID: sprint.ID,
		Name:     sprint.Name,
		Mode:     cfg.Mode,
		Chart:    cfg.Chart,
		Today:    cfg.Today.Format(schema.DayFormat),
		Points:   series,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetProgressPercentage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, sprint, err := h.resolveRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid percentage request: %v", err)), nil
	}
	includeStarted := request.GetBool("include_started", cfg.IncludeStarted)

	result := struct {
		SprintID       string              `json:"sprint_id"`
		Name           string              `json:"name"`
		Mode           schema.CountingMode `json:"mode"`
		IncludeStarted bool                `json:"include_started"`
		Percentage     int                 `json:"percentage"`
	}{
		SprintID:       sprint.ID,
		Name:           sprint.Name,
		Mode:           cfg.Mode,
		IncludeStarted: includeStarted,
		Percentage:     core.ProgressPercentage(sprint, cfg.Mode, includeStarted),
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSprintSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, sprint, err := h.resolveRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid summary request: %v", err)), nil
	}

	summary := core.Summarize(sprint, cfg.Mode, cfg.Today)
	jsonData, _ := json.MarshalIndent(summary, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListArchivedSprints(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.store == nil || !h.store.Enabled() {
		return mcp.NewToolResultError("archive backend is disabled"), nil
	}

	limit := request.GetInt("limit", h.baseCfg.ResultLimit)
	if limit < 1 {
		limit = contract.DefaultResultLimit
	}

	records, err := h.store.ListSprints(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("archive listing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
