package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/barbelltracker/internal/progression"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// NoInput is the input of tools without arguments.
type NoInput struct{}

// GetTrackerContextTool returns the MCP tool handler for get_tracker_context.
func (h *Handler) GetTrackerContextTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ExerciseInput is the input for the per exercise tools.
type ExerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name, e.g. Squat, Bench Press, Light Squat, Dips"`
}

// GetNextTargetTool returns the MCP tool handler for get_next_target.
func (h *Handler) GetNextTargetTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		exercise := progression.Exercise(strings.TrimSpace(in.Exercise))
		if exercise == "" {
			return errorResult("Missing exercise"), nil, nil
		}
		target, err := h.service.NextTarget(ctx, exercise)
		if err != nil {
			return errorResult("Error computing target: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("%s: %s", exercise, target)}},
		}, nil, nil
	}
}

// GetProgramPhaseTool returns the MCP tool handler for get_program_phase.
func (h *Handler) GetProgramPhaseTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		phase, err := h.service.Phase(ctx)
		if err != nil {
			return errorResult("Error detecting phase: " + err.Error()), nil, nil
		}
		return jsonResult(phase), nil, nil
	}
}

// GetAvailableExercisesTool returns the MCP tool handler for get_available_exercises.
func (h *Handler) GetAvailableExercisesTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		availability, err := h.service.Availability(ctx)
		if err != nil {
			return errorResult("Error resolving exercises: " + err.Error()), nil, nil
		}
		return jsonResult(availability), nil, nil
	}
}

// GetPersonalRecordsTool returns the MCP tool handler for get_personal_records.
func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		records, err := h.service.Records(ctx)
		if err != nil {
			return errorResult("Error fetching records: " + err.Error()), nil, nil
		}
		return jsonResult(records), nil, nil
	}
}

// ProgressSummaryInput is the input for get_progress_summary.
type ProgressSummaryInput struct {
	Until []string `json:"until,omitempty" jsonschema:"Period cutoff dates (YYYY-MM-DD); when given, the best weight per lift up to each date is included"`
}

type progressSummary struct {
	Lifts   []progression.LiftSummary `json:"lifts"`
	Periods []progression.PeriodBest  `json:"periods,omitempty"`
}

// GetProgressSummaryTool returns the MCP tool handler for get_progress_summary.
func (h *Handler) GetProgressSummaryTool() func(context.Context, *mcp.CallToolRequest, ProgressSummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressSummaryInput) (*mcp.CallToolResult, any, error) {
		boundaries := make([]time.Time, 0, len(in.Until))
		for _, until := range in.Until {
			t, err := time.Parse(dateLayout, until)
			if err != nil {
				return errorResult("Invalid until date: use YYYY-MM-DD"), nil, nil
			}
			boundaries = append(boundaries, t)
		}

		lifts, err := h.service.Summary(ctx)
		if err != nil {
			return errorResult("Error building summary: " + err.Error()), nil, nil
		}
		summary := progressSummary{Lifts: lifts}
		if len(boundaries) > 0 {
			summary.Periods, err = h.service.Progress(ctx, boundaries)
			if err != nil {
				return errorResult("Error building progress: " + err.Error()), nil, nil
			}
		}
		return jsonResult(summary), nil, nil
	}
}

// GetWarmupTool returns the MCP tool handler for get_warmup.
func (h *Handler) GetWarmupTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		exercise := progression.Exercise(strings.TrimSpace(in.Exercise))
		sets, err := h.service.Warmup(ctx, exercise)
		if err != nil {
			return errorResult("Error computing warm-up: " + err.Error()), nil, nil
		}

		var b strings.Builder
		for _, set := range sets {
			b.WriteString(fmt.Sprintf("%s: %s x %s", set.Label, strconv.FormatFloat(set.Weight, 'f', -1, 64), set.Reps))
			if set.RestSeconds > 0 {
				b.WriteString(fmt.Sprintf(", rest %ds", set.RestSeconds))
			}
			b.WriteString("\n")
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: b.String()}},
		}, nil, nil
	}
}
